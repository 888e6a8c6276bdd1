package csv

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var builtinOperations = []*Operation{
	sortOperation,
	selectOperation,
	mergeDupesOp,
	findDupesOp,
}

var sortOperation = &Operation{
	Name:   "sort",
	OpFunc: opSort,
	ArgDef: ArgDef{"cols": typSlice, "order": typSlice},
}

func opSort(records []*Record, args FuncArgs) ([]*Record, error) {
	cols, err := argSliceString(args, "cols")
	if err != nil {
		return nil, err
	}

	order := make([]string, len(cols))
	if _, ok := args["order"]; ok {
		if order, err = argSliceString(args, "order"); err != nil {
			return nil, err
		}
	}

	if len(order) != len(cols) {
		return nil, errors.New("number of items in 'order' must be equal to number of items in 'cols'")
	}

	out := make([]*Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		for ci, col := range cols {
			c := compareValues(out[i].Get(col), out[j].Get(col))
			if c == 0 {
				continue
			}

			if order[ci] == "desc" {
				return c > 0
			}
			return c < 0
		}

		return false
	})

	return out, nil
}

// compareValues orders numbers numerically and everything else by its text
func compareValues(a, b interface{}) int {
	aText, _, _ := scalarText(a)
	bText, _, _ := scalarText(b)

	aNum, aErr := strconv.ParseFloat(strings.TrimSpace(aText), 64)
	bNum, bErr := strconv.ParseFloat(strings.TrimSpace(bText), 64)

	if aErr == nil && bErr == nil {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		}
		return 0
	}

	return strings.Compare(aText, bText)
}

var selectOperation = &Operation{
	Name:   "select",
	OpFunc: opSelect,
	ArgDef: ArgDef{"cols": typSlice},
}

// opSelect keeps the fields in cols, in that order
func opSelect(records []*Record, args FuncArgs) ([]*Record, error) {
	cols, err := argSliceString(args, "cols")
	if err != nil {
		return nil, err
	}

	out := make([]*Record, len(records))
	for i, rec := range records {
		out[i] = NewRecord()
		for _, col := range cols {
			if rec.Has(col) {
				out[i].Set(col, rec.Get(col))
			}
		}
	}

	return out, nil
}

// groupBy groups records sharing the same values in cols, in order of first appearance
func groupBy(records []*Record, cols []string) [][]*Record {
	var groups [][]*Record
	index := map[string]int{}

	for _, rec := range records {
		parts := make([]string, len(cols))
		for i, col := range cols {
			parts[i], _, _ = scalarText(rec.Get(col))
		}
		key := strings.Join(parts, "\x00")

		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, nil)
		}

		groups[gi] = append(groups[gi], rec)
	}

	return groups
}

var mergeDupesOp = &Operation{
	Name:   "mergeDupes",
	OpFunc: opMergeDupes,
	ArgDef: ArgDef{
		"indexCols":   typSlice,
		"mergeValues": typString,
	},
}

// opMergeDupes keeps one record per group of duplicates. With mergeValues,
// empty fields of the first record are filled from the following ones.
func opMergeDupes(records []*Record, args FuncArgs) ([]*Record, error) {
	var err error

	var cols []string
	if cols, err = argSliceString(args, "indexCols"); err != nil {
		return nil, err
	}

	mergeValues := false
	if _, ok := args["mergeValues"]; ok {
		if mergeValues, err = argBool(args, "mergeValues"); err != nil {
			return nil, err
		}
	}

	var out []*Record
	for _, grp := range groupBy(records, cols) {
		merged := NewRecord()

		for _, rec := range grp {
			for _, k := range rec.Keys() {
				val := rec.Get(k)

				if !merged.Has(k) || (mergeValues && isEmpty(merged.Get(k))) {
					merged.Set(k, val)
				}
			}

			if !mergeValues {
				break
			}
		}

		out = append(out, merged)
	}

	return out, nil
}

var findDupesOp = &Operation{
	Name:   "findDuplicates",
	OpFunc: opFindDuplicates,
	ArgDef: ArgDef{
		"indexCols":  typSlice,
		"idCol":      typString,
		"dupeIdsCol": typString,
		"sep":        typString,
	},
}

// opFindDuplicates returns the first record of each group of duplicates,
// with the ids of the other members joined in dupeIdsCol
func opFindDuplicates(records []*Record, args FuncArgs) ([]*Record, error) {
	var err error

	var cols []string
	if cols, err = argSliceString(args, "indexCols"); err != nil {
		return nil, err
	}

	var idCol string
	if idCol, err = argString(args, "idCol"); err != nil {
		return nil, err
	}

	var dupeIdsCol string
	if dupeIdsCol, err = argString(args, "dupeIdsCol"); err != nil {
		return nil, err
	}

	var sep string
	if sep, err = argStringOr(args, "sep", ","); err != nil {
		return nil, err
	}

	var out []*Record
	for _, grp := range groupBy(records, cols) {
		if len(grp) == 1 {
			continue
		}

		var ids []string
		for _, rec := range grp[1:] {
			id, _, _ := scalarText(rec.Get(idCol))
			ids = append(ids, id)
		}

		first := NewRecord()
		for _, k := range grp[0].Keys() {
			first.Set(k, grp[0].Get(k))
		}
		first.Set(dupeIdsCol, strings.Join(ids, sep))

		out = append(out, first)
	}

	return out, nil
}
