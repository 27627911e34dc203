package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"
)

type script struct {
	Name  string
	Code  string
	Const string
	Zero  string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "numeral", "script_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of script objects
	scripts, err := convertDataToScripts(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the script objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "numeral", "script_data.tmpl"), scripts)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("script_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToScripts(data [][]string) ([]script, error) {
	// Sort the CSV records by numbering system code, ASCII digits first
	less := func(i, j int) bool {
		a := data[i][1]
		b := data[j][1]
		switch {
		case a == "latn":
			return true
		case b == "latn":
			return false
		}
		return a < b
	}
	sort.Slice(data, less)

	// Convert the CSV records to script objects
	scripts := []script{}
	for _, rec := range data {
		zero, err := strconv.ParseUint(rec[2], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("script %v: parsing zero code point: %w", rec[1], err)
		}
		if err := checkDigits(rune(zero)); err != nil {
			return nil, fmt.Errorf("script %v: %w", rec[1], err)
		}
		s := script{
			Name:  rec[0],
			Code:  rec[1],
			Const: strings.ToUpper(rec[1][:1]) + rec[1][1:],
			Zero:  fmt.Sprintf("%04X", zero),
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// checkDigits verifies that the ten code points starting at zero are
// decimal digits with values 0 through 9.
func checkDigits(zero rune) error {
	for i := range 10 {
		r := zero + rune(i)
		if !unicode.Is(unicode.Nd, r) {
			return fmt.Errorf("%U is not a decimal digit", r)
		}
	}
	if unicode.Is(unicode.Nd, zero-1) {
		return fmt.Errorf("%U is preceded by another decimal digit", zero)
	}
	return nil
}

func generateGoCode(filename string, scripts []script) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, scripts)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
