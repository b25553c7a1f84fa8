package ports

import "io"

// TemplateSink emits the contents of a template file.
type TemplateSink interface {
	/*
	   Print writes the template at templatePath to out line by line.
	   Nothing is written when the template cannot be read.
	*/
	Print(templatePath string, out io.Writer) error

	/*
	   Append appends the template at templatePath to the local ignore file,
	   creating it if needed. It returns the number of bytes written.
	*/
	Append(templatePath string) (int, error)

	// Destination returns the path of the local ignore file.
	Destination() string
}
