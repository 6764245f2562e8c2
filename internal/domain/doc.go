// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/college, domain/registration).
// This root package holds the sentinel error taxonomy and the field-level
// validation type that adapters translate into transport responses.
package domain
