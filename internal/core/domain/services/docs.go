// Package services provides the domain services of the brokerage: logic that
// spans several aggregates and does not belong to any one of them.
//
// The package includes:
//   - PricingEngine: prices a driver for a cargo from the two rate tables
//   - MatchingEngine: proposes vacant drivers for an order and reserves them
//   - TimeEstimator: predicts solution durations (random or fixed)
package services
