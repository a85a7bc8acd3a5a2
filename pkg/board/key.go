package board

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/models"
)

// ContainerKey identifies one ordered container of items.
//
//	unassigned              global unassigned pool
//	store:<id>              a store's unassigned pool
//	store:<id>/section:<id> a section of a store
type ContainerKey string

const (
	GlobalKey ContainerKey = "unassigned"

	storePrefix   = "store:"
	sectionPrefix = "/section:"
)

// Placement is the decoded form of a ContainerKey.
type Placement struct {
	StoreID   *int64
	SectionID *int64
}

func (p Placement) Key() ContainerKey {
	return EncodeKey(p.StoreID, p.SectionID)
}

func (p Placement) IsGlobal() bool {
	return p.StoreID == nil && p.SectionID == nil
}

// EncodeKey returns the key of the container holding items placed at (storeID, sectionID).
// A section without its store is not a valid placement and maps to GlobalKey.
func EncodeKey(storeID, sectionID *int64) ContainerKey {
	switch {
	case storeID == nil && sectionID == nil:
		return GlobalKey
	case storeID == nil:
		zap.S().Named("board").Warnw("section without store, using global container", "section_id", *sectionID)
		return GlobalKey
	case sectionID == nil:
		return ContainerKey(storePrefix + strconv.FormatInt(*storeID, 10))
	default:
		return ContainerKey(storePrefix + strconv.FormatInt(*storeID, 10) + sectionPrefix + strconv.FormatInt(*sectionID, 10))
	}
}

// KeyOf returns the container an item claims to live in.
func KeyOf(item models.Item) ContainerKey {
	return EncodeKey(item.StoreID, item.SectionID)
}

// DecodeKey is the inverse of EncodeKey. Unrecognized keys decode to the global
// placement; the mismatch is logged, never returned.
func DecodeKey(key ContainerKey) Placement {
	p, err := ParseKey(key)
	if err != nil {
		zap.S().Named("board").Warnw("unrecognized container key, using global container", "key", string(key), "error", err)
		return Placement{}
	}
	return p
}

// ParseKey is the strict form of DecodeKey.
func ParseKey(key ContainerKey) (Placement, error) {
	if key == GlobalKey {
		return Placement{}, nil
	}

	rest, ok := strings.CutPrefix(string(key), storePrefix)
	if !ok {
		return Placement{}, fmt.Errorf("missing %q prefix", storePrefix)
	}

	storePart, sectionPart, hasSection := strings.Cut(rest, sectionPrefix)
	storeID, err := strconv.ParseInt(storePart, 10, 64)
	if err != nil {
		return Placement{}, fmt.Errorf("invalid store id %q: %w", storePart, err)
	}

	p := Placement{StoreID: &storeID}
	if hasSection {
		sectionID, err := strconv.ParseInt(sectionPart, 10, 64)
		if err != nil {
			return Placement{}, fmt.Errorf("invalid section id %q: %w", sectionPart, err)
		}
		p.SectionID = &sectionID
	}

	// "store:+1" or "store:007" parse fine but are not keys we ever produce
	if p.Key() != key {
		return Placement{}, fmt.Errorf("non canonical key")
	}

	return p, nil
}
