package prettytable

import "iter"

// AddRowsSeq collects rows from seq and adds them like [Table.AddRows]:
// if any row is rejected none are added.
func (t *Table) AddRowsSeq(seq iter.Seq[[]any]) error {
	var rows [][]any
	for row := range seq {
		rows = append(rows, row)
	}
	return t.AddRows(rows...)
}

// AddRowsChan drains ch and adds the rows like [Table.AddRowsSeq].
func (t *Table) AddRowsChan(ch <-chan []any) error {
	return t.AddRowsSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
