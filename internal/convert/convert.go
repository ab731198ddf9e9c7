// Package convert translates AWS export documents into CloudFormation
// template resources. Each converter is independent: it maps one resource
// category field by field, substituting a fixed default wherever the export
// omits a value.
package convert

import "strings"

// logicalID derives a CloudFormation logical resource ID from a native AWS
// identifier: the resource kind prefix plus the identifier with hyphens
// stripped. Colliding IDs silently overwrite earlier entries; the exports
// this tool consumes carry unique native IDs per category.
func logicalID(prefix, nativeID string) string {
	return prefix + strings.ReplaceAll(nativeID, "-", "")
}

// stringOr returns *p, or def when p is nil.
func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// int32Or returns *p, or def when p is nil.
func int32Or(p *int32, def int32) int32 {
	if p == nil {
		return def
	}
	return *p
}
