// Package types defines the Inventory, Mutation, Journal, and Store types
// and the standard errors for the larder inventory tracker.
package types
