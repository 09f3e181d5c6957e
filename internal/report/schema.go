package report

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Kind names one of cm's ten analysis commands, used to select the
// document shape [Schema] and [Validate] operate on.
type Kind string

const (
	KindLOC        Kind = "loc"
	KindDups       Kind = "dups"
	KindIndent     Kind = "indent"
	KindHalstead   Kind = "hal"
	KindCyclomatic Kind = "cycom"
	KindMI         Kind = "mi"
	KindMIV        Kind = "miv"
	KindHotspots   Kind = "hotspots"
	KindKnowledge  Kind = "knowledge"
	KindCoupling   Kind = "tc"
)

// ErrUnknownKind indicates a [Kind] with no registered document schema.
var ErrUnknownKind = fmt.Errorf("report: unknown kind")

// Schema returns the jsonschema-go schema describing kind's --json document
// shape.
func Schema(kind Kind) (*jsonschema.Schema, error) {
	switch kind {
	case KindLOC:
		return jsonschema.For[Document[LOCFile, LOCSummary]](nil)
	case KindDups:
		return jsonschema.For[Document[DupGroupRecord, DupsSummary]](nil)
	case KindIndent:
		return jsonschema.For[Document[IndentFile, IndentSummary]](nil)
	case KindHalstead:
		return jsonschema.For[Document[HalsteadFile, HalsteadSummary]](nil)
	case KindCyclomatic:
		return jsonschema.For[Document[CyclomaticFile, CyclomaticSummary]](nil)
	case KindMI, KindMIV:
		return jsonschema.For[Document[MaintainabilityFile, MaintainabilitySummary]](nil)
	case KindHotspots:
		return jsonschema.For[Document[HotspotFile, HotspotSummary]](nil)
	case KindKnowledge:
		return jsonschema.For[Document[KnowledgeFile, KnowledgeSummary]](nil)
	case KindCoupling:
		return jsonschema.For[Document[CouplingPair, CouplingSummary]](nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Validate checks doc against kind's schema, the `--validate-schema` debug
// aid. It is a fresh Resolve per call since schemas are generated on
// demand rather than cached at package scope.
func Validate(kind Kind, doc any) error {
	schema, err := Schema(kind)
	if err != nil {
		return err
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("report: resolving schema for %q: %w", kind, err)
	}

	if err := resolved.Validate(doc); err != nil {
		return fmt.Errorf("report: %q output failed schema validation: %w", kind, err)
	}

	return nil
}
