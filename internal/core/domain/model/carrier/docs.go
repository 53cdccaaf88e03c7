// Package carrier contains the Carrier aggregate: an external haulage
// operator with regions of interest, fleet types, offered services,
// warehousing facilities, and a set of dated compliance documents.
// Carriers are owned by the onboarding process and read-only to the
// assignment core.
package carrier
