// Package rule models courier eligibility rules and the ordered table that holds them.
//
// The package includes:
//   - Rule: a (courier, max weight, region) tuple with an eligibility check
//   - Table: an immutable, ordered sequence of rules
//
// Key business rules:
//   - A rule matches when the weight is at most its max weight (inclusive) and its region
//     is a case-sensitive substring of the destination
//   - Table order is part of the contract: allocation takes the first matching rule
//   - A table is built once at startup and never mutated afterwards
package rule
