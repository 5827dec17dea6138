// Package visible computes which members of a type are documented on its
// page and which are listed as inherited from a supertype.
package visible

import (
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/java"
)

var log = commonlog.GetLogger("saidoc.visible")

type Kind int

const (
	Methods Kind = iota
	Constructors
)

func (k Kind) String() string {
	switch k {
	case Methods:
		return "methods"
	case Constructors:
		return "constructors"
	}
	return "unknown"
}

// Group is the set of members listed as inherited from one supertype.
type Group struct {
	Type    *java.Class
	Members []*java.Method
}

// MemberMap is the visible member set of one type for one member kind.
// It is immutable once built.
type MemberMap struct {
	typ        *java.Class
	kind       Kind
	supertypes []*java.Class
	leaf       []*java.Method
	sorted     []*java.Method
	inherited  []Group
}

// New builds the member map of t. Types are visited most specific first:
// t, its superclass chain, then its interfaces breadth-first. A member is
// dropped when a subtype of its owner redeclares it, or when a type
// visited earlier already claimed its signature, so overridden and
// hidden members never appear. Signatures are compared as seen from t,
// with the type arguments t supplies substituted.
func New(t *java.Class, kind Kind, cfg *config.Configuration) *MemberMap {
	mm := &MemberMap{
		typ:        t,
		kind:       kind,
		supertypes: t.Supertypes(),
	}

	if kind == Constructors {
		for _, m := range t.Constructors() {
			if includes(cfg, t, m) {
				mm.leaf = append(mm.leaf, m)
			}
		}
		mm.sorted = sortMembers(mm.leaf)
		return mm
	}

	types := append([]*java.Class{t}, mm.supertypes...)
	declarers := make(map[string][]*java.Class)
	for _, u := range types {
		for _, m := range u.Methods() {
			if m.IsInheritableFrom(t) {
				declarers[m.KeyIn(t)] = append(declarers[m.KeyIn(t)], u)
			}
		}
	}

	claimed := make(map[string]bool)
	byOwner := make(map[*java.Class][]*java.Method)
	for _, u := range types {
		for _, m := range u.Methods() {
			if !m.IsInheritableFrom(t) {
				continue
			}
			key := m.KeyIn(t)
			if claimed[key] || redeclaredBelow(u, declarers[key]) {
				log.Debugf("%s: %s is overridden or hidden", t.Name(), m)
				continue
			}
			claimed[key] = true

			if !includes(cfg, t, m) {
				continue
			}
			switch {
			case u == t:
				mm.leaf = append(mm.leaf, m)
			case u.IsIncluded() || u.IsReachable():
				byOwner[u] = append(byOwner[u], m)
			default:
				log.Debugf("%s: surfacing %s from undocumented %s", t.Name(), m, u.Name())
				mm.leaf = append(mm.leaf, m)
			}
		}
	}

	for _, u := range mm.supertypes {
		if members := byOwner[u]; len(members) > 0 {
			mm.inherited = append(mm.inherited, Group{Type: u, Members: members})
		}
	}
	mm.sorted = sortMembers(mm.leaf)
	return mm
}

// redeclaredBelow reports whether one of declarers is a proper subtype of
// u, so that its declaration overrides u's whatever the visiting order.
func redeclaredBelow(u *java.Class, declarers []*java.Class) bool {
	for _, d := range declarers {
		if d != u && d.IsSubtypeOf(u) {
			return true
		}
	}
	return false
}

func includes(cfg *config.Configuration, t *java.Class, m *java.Method) bool {
	if !cfg.Includes(m.Visibility()) {
		return false
	}
	if m.Visibility() == java.VisibilityPackage && m.Owner().Package() != t.Package() {
		return false
	}
	return true
}

// sortMembers orders by name, then erased parameter list, then declaring
// type so that the order is total.
func sortMembers(members []*java.Method) []*java.Method {
	sorted := append([]*java.Method(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		if c := compareParams(a, b); c != 0 {
			return c < 0
		}
		return a.Owner().Name() < b.Owner().Name()
	})
	return sorted
}

func compareParams(a, b *java.Method) int {
	pa, pb := a.ErasedParameterTypes(), b.ErasedParameterTypes()
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if c := strings.Compare(pa[i].String(), pb[i].String()); c != 0 {
			return c
		}
	}
	return len(pa) - len(pb)
}

func (mm *MemberMap) Type() *java.Class { return mm.typ }
func (mm *MemberMap) Kind() Kind        { return mm.kind }

// Leaf returns the members documented on the type's page, sorted by
// name.
func (mm *MemberMap) Leaf() []*java.Method { return mm.sorted }

// LeafSourceOrder returns the same members as Leaf in declaration order:
// the type's own members first, then surfaced members in the order their
// declaring types were visited.
func (mm *MemberMap) LeafSourceOrder() []*java.Method { return mm.leaf }

// Members returns the leaf members in sorted or source order.
func (mm *MemberMap) Members(sorted bool) []*java.Method {
	if sorted {
		return mm.sorted
	}
	return mm.leaf
}

// Inherited returns the members listed as inherited, grouped by declaring
// type in visiting order.
func (mm *MemberMap) Inherited() []Group { return mm.inherited }

// MembersFor returns the members inherited from s, or the leaf members
// in source order when s is the type itself.
func (mm *MemberMap) MembersFor(s *java.Class) []*java.Method {
	if s == mm.typ {
		return mm.leaf
	}
	for _, g := range mm.inherited {
		if g.Type == s {
			return g.Members
		}
	}
	return nil
}

// Supertypes returns the proper supertypes in visiting order.
func (mm *MemberMap) Supertypes() []*java.Class { return mm.supertypes }

// HasMembers reports whether any member is documented on the page.
func (mm *MemberMap) HasMembers() bool { return len(mm.leaf) > 0 }
