/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ageverify

// Metadata keys set by the service. They override caller supplied values.
const (
	MetadataVerificationType = "verificationType"
	MetadataThreshold        = "threshold"
	MetadataBracketID        = "bracketId"
	MetadataBracketName      = "bracketName"
)

// BuildMetadata overlays the caller metadata with the verification type and, depending on the
// type, the threshold or the assigned bracket. Raw ages and dates are never included.
func BuildMetadata(req *Request, outcome *Outcome) map[string]interface{} {
	m := make(map[string]interface{}, len(req.Metadata)+3)

	for k, v := range req.Metadata {
		m[k] = v
	}

	m[MetadataVerificationType] = int(req.VerificationType)

	switch req.VerificationType {
	case SimpleAge, BirthDate:
		if req.Threshold != nil {
			m[MetadataThreshold] = *req.Threshold
		}
	case AgeBracket:
		m[MetadataBracketID] = int(outcome.Bracket)
		m[MetadataBracketName] = outcome.BracketName
	}

	return m
}
