// Package docml builds WordProcessingML documents and serializes them as
// .docx archives.
//
// A .docx file is a ZIP of XML parts. The package models the parts it emits
// (document.xml, styles.xml, numbering.xml and their relationships) as
// xml-tagged structs in the w: namespace, with runs as the atomic unit of
// character formatting. Headings reference the native Heading1-Heading6
// paragraph styles so word processors recognize the document outline, list
// items reference bullet or decimal numbering definitions, and hyperlinks
// are emitted as relationship targets.
//
// Serialization is deterministic: part order is fixed, relationship ids are
// allocated in document order, and every archive entry carries a zero
// timestamp, so building the same document twice yields identical bytes.
package docml
