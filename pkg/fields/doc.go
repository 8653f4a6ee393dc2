// Package fields defines the booking-question field model: the closed set of
// field types, the per-type config registry populated once at startup, and
// variant resolution for fields that can be laid out as alternative sub-field
// sets (for example a single full-name input versus split first and last name
// inputs). Everything here is read-mostly data; validation of response values
// lives in pkg/validation.
package fields
