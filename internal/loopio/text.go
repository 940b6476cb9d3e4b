package loopio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/curvesep/advanced"
	"github.com/pkg/errors"
)

// Read loops in the line based format: one point per line as "x y", with a
// trailing "c" marking a control point. Loops are separated by blank lines.
// Lines starting with # are ignored.
func ReadText(in io.Reader) ([]Loop, error) {
	var loops []Loop
	scanner := bufio.NewScanner(in)
	var points Loop
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the loop
		if line == "" {
			if len(points) > 0 {
				loops = append(loops, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading loops")
	}

	// Handle trailing loop if any
	if len(points) > 0 {
		loops = append(loops, points)
	}
	return loops, nil
}

func parsePoint(line string) (advanced.PointData, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 && len(parts) != 3 {
		return advanced.PointData{}, errors.Errorf("expected \"x y\" or \"x y c\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.PointData{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.PointData{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	pointType := advanced.Normal
	if len(parts) == 3 {
		switch strings.ToLower(parts[2]) {
		case "c", "control":
			pointType = advanced.Control
		case "n", "normal":
		default:
			return advanced.PointData{}, errors.Errorf("unknown point type %q", parts[2])
		}
	}
	return advanced.PointData{Position: advanced.Point{X: x, Y: y}, Type: pointType}, nil
}

// Write loops in the format read by ReadText.
func WriteText(out io.Writer, loops []Loop) error {
	w := bufio.NewWriter(out)
	for i, loop := range loops {
		if i > 0 {
			w.WriteString("\n")
		}
		for _, p := range loop {
			w.WriteString(strconv.FormatFloat(p.Position.X, 'g', -1, 64))
			w.WriteString(" ")
			w.WriteString(strconv.FormatFloat(p.Position.Y, 'g', -1, 64))
			if p.Type == advanced.Control {
				w.WriteString(" c")
			}
			w.WriteString("\n")
		}
	}
	return errors.Wrap(w.Flush(), "writing loops")
}
