// Package localtime turns UTC timestamp strings into the date and time text a
// viewer expects, using the viewer's locale conventions and timezone.
//
// Parsing accepts the ISO 8601 and RFC 2822 forms a browser date parser
// accepts. Values that cannot be parsed render as InvalidDate rather than
// failing.
package localtime
