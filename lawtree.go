// Package lawtree converts semi-structured legal-document markup into a
// normalized tree (Part → Chapter → Section → Article → Clause → Point),
// extracting recipient/signer metadata and appendix blocks on the side.
//
// This package contains domain types, interfaces and the pure parsing
// automaton following Ben Johnson's Standard Package Layout. Implementations
// that need third-party dependencies live in subdirectories named after
// their primary dependency (e.g., goquery/, sqlite/, etree/).
package lawtree
