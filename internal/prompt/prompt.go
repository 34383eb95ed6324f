// Package prompt reads polygon vertices typed at the console
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Message asks for the next vertex
	Message = "Enter x y (or press Enter to finish): "
	// InvalidMessage answers a line that is not two numbers
	InvalidMessage = "Invalid input. Please enter two numbers like: 1 2"
)

// ErrInvalidInput reports a line that is not exactly two finite numbers
var ErrInvalidInput = errors.New("prompt: expected two numbers")

// ParsePoint reads "x y" or "x,y" (any amount of surrounding space)
func ParsePoint(line string) (mgl64.Vec2, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 || strings.Count(line, ",") > 1 {
		return mgl64.Vec2{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}

	var p mgl64.Vec2
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return mgl64.Vec2{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
		}
		p[i] = v
	}
	return p, nil
}

// ReadPoints prompts on w and reads one vertex per line from r until a blank line or the end of
// input. Malformed lines are reported and asked again.
func ReadPoints(r io.Reader, w io.Writer) ([]mgl64.Vec2, error) {
	errorStyle := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("167"))

	var points []mgl64.Vec2
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, Message)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		p, err := ParsePoint(line)
		if err != nil {
			fmt.Fprintln(w, errorStyle.Render(InvalidMessage))
			continue
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return points, fmt.Errorf("read points: %w", err)
	}

	fmt.Fprintf(w, "Collected %d points.\n", len(points))
	return points, nil
}
