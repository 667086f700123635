// Package customer provides the Customer aggregate: the registered account that
// places orders. Orders are separate aggregates referencing the customer id.
package customer
