package domain

// MapTable applies the mapper to every row of a table, sequentially and in
// order. Row-local failures are recorded (by identifier when the row has
// one, by position otherwise) and the batch continues; only structural
// problems abort it. The header is checked once up front so a misnamed
// column surfaces before any row is processed.
func MapTable(table *Table, mapper *Mapper) (*TransformResult, error) {
	if table == nil || len(table.Headers) == 0 {
		return nil, &StructuralError{Reason: "input has no header row"}
	}
	if err := CheckColumns(table.Headers, mapper.Specs); err != nil {
		return nil, err
	}

	result := &TransformResult{
		Records: make([]OutputRecord, 0, len(table.Rows)),
	}

	idColumn := ""
	for _, spec := range mapper.Specs {
		if spec.Logical == FieldIdentifier {
			idColumn = spec.Column
		}
	}

	for i, row := range table.Rows {
		result.Attempted++
		record, err := mapper.MapRow(row)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, RowFailure{
				Identifier: row[idColumn],
				RowIndex:   i,
				Reason:     err.Error(),
			})
			continue
		}
		result.Succeeded++
		result.Records = append(result.Records, record)
	}

	return result, nil
}
