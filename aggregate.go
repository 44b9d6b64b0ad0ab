package f2f

import "sort"

// GroupBy selects the grouping key for a line.
type GroupBy func(Line) string

// BySeller groups lines under the grower that supplies them. Used for buyer
// orders and invoices.
func BySeller(l Line) string { return l.Seller }

// ByCounterparty groups lines under the party on the other side of the
// trade. Used for pick lists, where each seller's list is broken down by
// buyer, and for assembling per-buyer orders from a flat extraction.
func ByCounterparty(l Line) string { return l.Counterparty }

// Group is a run of lines sharing a grouping key, laid out together under
// one label with its own subtotal.
type Group struct {
	Key   string
	Lines []Line
}

// Subtotal is the sum of the group's line totals.
func (g Group) Subtotal() Pence {
	var sum Pence
	for _, l := range g.Lines {
		sum += l.Total()
	}
	return sum
}

// GroupLines partitions lines by key. Groups appear in first-seen order and
// lines keep their insertion order within a group, so the same input always
// produces the same document.
func GroupLines(lines []Line, key GroupBy) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, l := range lines {
		k := key(l)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Lines = append(groups[i].Lines, l)
	}
	return groups
}

// SortByDate orders lines chronologically, preserving the relative order of
// lines sharing a date. Invoice groups are sorted this way before layout.
func SortByDate(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})
}

// Totals holds the money summary of one document.
type Totals struct {
	Subtotal Pence
	VAT      Pence
	Total    Pence
}

// SumLines computes a document summary from its lines. VAT is computed per
// line and summed, matching how each line displays its own rate.
func SumLines(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.Total()
		t.VAT += l.VAT()
	}
	t.Total = t.Subtotal + t.VAT
	return t
}

// SumGroups is the grand total across grouped lines, equal by construction
// to the sum of the group subtotals.
func SumGroups(groups []Group) Pence {
	var sum Pence
	for _, g := range groups {
		sum += g.Subtotal()
	}
	return sum
}
