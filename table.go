package aosoa

import (
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
)

// PackTable appends every row of tbl to the population. Plain fields the
// table stores are copied; the rest start zeroed.
func (s *SoA) PackTable(tbl table.Table) error {
	if tbl == nil {
		return eris.New("cannot pack a nil table")
	}
	columns := s.tableColumns(tbl)
	rows := tbl.Length()
	for row := 0; row < rows; row++ {
		s.SoABackend.PushBack(ScalarBackend{})
		s.store.resize(s.vectors)
		for _, c := range columns {
			c.loadRow(tbl, row, s.vectors-1, s.lastSize-1)
		}
	}
	Config.logger.Debug().
		Str("layout", s.Layout().Name()).
		Int("rows", rows).
		Int("fields", len(columns)).
		Int("skipped", len(iter_util.Collect(tbl.ElementTypes()))-len(columns)).
		Msg("packed table")
	return nil
}

// UnpackTable writes the population back into tbl, element i into row i.
func (s *SoA) UnpackTable(tbl table.Table) error {
	if tbl == nil {
		return eris.New("cannot unpack into a nil table")
	}
	if rows := tbl.Length(); rows != s.Elements() {
		return eris.Wrap(TableLengthError{Rows: rows, Elements: s.Elements()}, "failed to unpack population")
	}
	columns := s.tableColumns(tbl)
	for row := 0; row < s.Elements(); row++ {
		batch, lane := decode(row)
		for _, c := range columns {
			c.storeRow(tbl, row, batch, lane)
		}
	}
	Config.logger.Debug().
		Str("layout", s.Layout().Name()).
		Int("rows", s.Elements()).
		Int("fields", len(columns)).
		Msg("unpacked table")
	return nil
}

func (s *SoA) tableColumns(tbl table.Table) []column {
	var columns []column
	for _, c := range s.store.columns {
		if c.inTable(tbl) {
			columns = append(columns, c)
		}
	}
	return columns
}
