// Package kernel provides the value objects shared across the freight domain model:
//   - UUID: identifier of customers, drivers, orders and solutions
//   - Person: the name parts embedded in Customer and Driver
//   - Address: pickup and drop-off points of an order
//   - Clock: time source for lifecycle transitions that stamp dates
//
// Values are immutable once constructed and reject their zero value on Validate.
package kernel
