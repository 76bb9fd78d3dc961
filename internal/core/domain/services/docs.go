// Package services contains stateless domain services that implement
// business rules spanning no single aggregate, such as order pricing.
package services
