// Package kernel provides the shared value objects of the kitchenpos domain:
// UUID identifiers and Price monetary amounts.
//
// Both types follow the validated value object pattern: the zero value is
// invalid, construction goes through factory functions that enforce the
// invariants, and instances are immutable afterwards. Price stores integer
// minor units so that arithmetic never loses precision; binary floating point
// is deliberately not used for money.
package kernel
