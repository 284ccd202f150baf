package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/xuri/excelize/v2"
)

var ErrNoImportRows = errors.New("no rows with name and email columns found")

type ImportService struct {
	registration *RegistrationService
}

func NewImportService(registration *RegistrationService) *ImportService {
	return &ImportService{registration: registration}
}

// ImportCSV reads a CSV with a header row containing name and email columns
// and registers each row in turn. Rows are independent: a failed row is
// reported and the import continues, there is no batching or rollback.
func (s *ImportService) ImportCSV(r io.Reader) (*dto.ImportResponse, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return s.importRecords(records)
}

// ImportXLSX reads the first sheet of a workbook with the same header layout
// as ImportCSV.
func (s *ImportService) ImportXLSX(r io.Reader) (*dto.ImportResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoImportRows
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return s.importRecords(rows)
}

func (s *ImportService) importRecords(records [][]string) (*dto.ImportResponse, error) {
	if len(records) < 2 {
		return nil, ErrNoImportRows
	}

	nameCol, emailCol := -1, -1
	for i, header := range records[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "name", "nombre":
			nameCol = i
		case "email", "correo":
			emailCol = i
		}
	}
	if nameCol < 0 || emailCol < 0 {
		return nil, ErrNoImportRows
	}

	report := &dto.ImportResponse{Errors: []dto.ImportRowError{}}
	for i, record := range records[1:] {
		row := i + 2 // 1-based, after the header
		var name, email string
		if nameCol < len(record) {
			name = record[nameCol]
		}
		if emailCol < len(record) {
			email = record[emailCol]
		}

		_, err := s.registration.Register(&dto.RegisterRequest{Name: name, Email: email})
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dto.ImportRowError{
				Row:     row,
				Email:   strings.TrimSpace(email),
				Message: err.Error(),
			})
			continue
		}
		report.Imported++
	}

	return report, nil
}
