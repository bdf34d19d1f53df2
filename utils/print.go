// Copyright 2025 The histogram-sampler Authors
// This file is part of the histogram-sampler workload tooling.
//
// histogram-sampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// histogram-sampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with histogram-sampler. If not, see <http://www.gnu.org/licenses/>.

package utils

//go:generate mockgen -source print.go -destination print_mock.go -package utils

import (
	"fmt"
	"io"
	"os"
)

// Printer renders one report to its destination.
type Printer interface {
	Print() error
	Close()
}

// Printers is a collection of printers fed from the same report function.
type Printers struct {
	printers []Printer
}

func NewPrinters() *Printers {
	return &Printers{printers: []Printer{}}
}

func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

// Print renders the report on every registered printer.
func (ps *Printers) Print() {
	for _, p := range ps.printers {
		if err := p.Print(); err != nil {
			fmt.Fprintf(os.Stderr, "unable to print; %v\n", err)
		}
	}
}

func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

// PrinterToWriter writes the report produced by f to an io.Writer.
type PrinterToWriter struct {
	w io.Writer
	f func() string
}

func NewPrinterToWriter(w io.Writer, f func() string) *PrinterToWriter {
	return &PrinterToWriter{w: w, f: f}
}

func NewPrinterToConsole(f func() string) *PrinterToWriter {
	return &PrinterToWriter{w: os.Stdout, f: f}
}

func (p *PrinterToWriter) Print() error {
	_, err := fmt.Fprintln(p.w, p.f())
	return err
}

func (p *PrinterToWriter) Close() {}

// AddPrinterToWriter is a fluent wrapper around NewPrinterToWriter.
func (ps *Printers) AddPrinterToWriter(w io.Writer, f func() string) *Printers {
	return ps.AddPrinter(NewPrinterToWriter(w, f))
}

// AddPrinterToConsole is a fluent wrapper around NewPrinterToConsole.
func (ps *Printers) AddPrinterToConsole(disabled bool, f func() string) *Printers {
	if disabled {
		return ps
	}
	return ps.AddPrinter(NewPrinterToConsole(f))
}

// PrinterToFile appends the report produced by f to a file.
type PrinterToFile struct {
	file string
	f    func() string
}

func NewPrinterToFile(file string, f func() string) *PrinterToFile {
	return &PrinterToFile{file: file, f: f}
}

func (p *PrinterToFile) Print() error {
	file, err := os.OpenFile(p.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintln(file, p.f())
	return err
}

func (p *PrinterToFile) Close() {}

// AddPrinterToFile is a fluent wrapper around NewPrinterToFile. An empty
// file name disables the printer.
func (ps *Printers) AddPrinterToFile(file string, f func() string) *Printers {
	if file == "" {
		return ps
	}
	return ps.AddPrinter(NewPrinterToFile(file, f))
}
