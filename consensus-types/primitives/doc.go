// Package types contains ssz-compatible primitive types used across the
// consensus value types, such as slots and signing-root capable byte slices.
package types
