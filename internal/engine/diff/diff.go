// Package diff computes the ordered change list between two snapshots.
package diff

import (
	"slices"

	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/engine/version"
)

// Compute returns one record per (name, scope) present in either snapshot,
// ordered by scope (runtime, then dev) and then byte-wise by name.
// Unchanged packages are included; callers decide whether to emit them.
func Compute(before, after *domain.Snapshot) []domain.ChangeRecord {
	keys := unionKeys(before, after)
	records := make([]domain.ChangeRecord, 0, len(keys))

	for _, key := range keys {
		from, inBefore := before.Lookup(key)
		to, inAfter := after.Lookup(key)

		record := domain.ChangeRecord{Name: key.Name, Scope: key.Scope}
		switch {
		case inAfter && !inBefore:
			record.Kind = domain.ChangeAdded
			record.ToVersion = to.Version()
		case inBefore && !inAfter:
			record.Kind = domain.ChangeRemoved
			record.FromVersion = from.Version()
		default:
			record.FromVersion = from.Version()
			record.ToVersion = to.Version()
			record.Kind = classify(record.FromVersion, record.ToVersion)
		}
		records = append(records, record)
	}

	return records
}

func classify(from, to string) domain.ChangeKind {
	if from == to {
		return domain.ChangeUnchanged
	}
	order, _ := version.Compare(from, to)
	if order == version.Lower {
		return domain.ChangeDowngraded
	}
	return domain.ChangeUpgraded
}

func unionKeys(before, after *domain.Snapshot) []domain.PackageKey {
	keys := append(before.Keys(), after.Keys()...)
	slices.SortFunc(keys, domain.PackageKey.Compare)
	return slices.Compact(keys)
}

// Emitted filters records down to those that produce a script line.
func Emitted(records []domain.ChangeRecord) []domain.ChangeRecord {
	out := make([]domain.ChangeRecord, 0, len(records))
	for _, r := range records {
		if r.Kind.Emits() {
			out = append(out, r)
		}
	}
	return out
}

// Summary counts records per kind.
type Summary map[domain.ChangeKind]int

// Summarize counts records per kind.
func Summarize(records []domain.ChangeRecord) Summary {
	s := make(Summary, len(domain.ChangeKinds))
	for _, r := range records {
		s[r.Kind]++
	}
	return s
}

// Net returns the number of records that produce a script line.
func (s Summary) Net() int {
	n := 0
	for kind, count := range s {
		if kind.Emits() {
			n += count
		}
	}
	return n
}
