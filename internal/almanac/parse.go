package almanac

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"almanac/internal/remap"
)

const (
	seedsPrefix   = "seeds:"
	sectionSuffix = " map:"
)

// ParseError locates a malformed line in a text listing.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// LoadFile loads an almanac from path. Files ending in .yaml or .yml are read
// as YAML, anything else as a text listing.
func LoadFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	if IsYAMLPath(path) {
		return ParseYAML(data)
	}

	return Parse(data)
}

// IsYAMLPath reports whether path has a YAML extension.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Parse parses a text listing. Rules within each stage are sorted by source start.
func Parse(data []byte) (*Almanac, error) {
	p := parser{}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		p.line++
		if err := p.consume(strings.TrimSpace(sc.Text())); err != nil {
			return nil, fmt.Errorf("failed to parse almanac: %w", err)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	a, err := p.finish()
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac: %w", err)
	}

	return a, nil
}

type parser struct {
	line     int
	seeds    Seeds
	seenSeed bool
	current  *remap.Stage
	builder  remap.Builder
}

func (p *parser) consume(text string) error {
	switch {
	case text == "":
		return p.closeSection()

	case !p.seenSeed:
		return p.parseSeeds(text)

	case strings.HasSuffix(text, sectionSuffix):
		if err := p.closeSection(); err != nil {
			return err
		}

		name := strings.TrimSpace(strings.TrimSuffix(text, sectionSuffix))

		kind, err := remap.ParseStageKind(name)
		if err != nil {
			return p.errorf("%v", err)
		}

		if p.builder.Has(kind) {
			return p.errorf("duplicate section %q", name)
		}

		p.current = &remap.Stage{Kind: kind}

		return nil

	case p.current == nil:
		return p.errorf("rule %q outside of a map section", text)

	default:
		rule, err := p.parseRule(text)
		if err != nil {
			return err
		}

		p.current.Rules = append(p.current.Rules, rule)

		return nil
	}
}

func (p *parser) parseSeeds(text string) error {
	rest, ok := strings.CutPrefix(text, seedsPrefix)
	if !ok {
		return p.errorf("expected %q line, got %q", seedsPrefix, text)
	}

	values, err := p.parseInts(strings.Fields(rest))
	if err != nil {
		return err
	}

	p.seeds = values
	p.seenSeed = true

	return nil
}

func (p *parser) parseRule(text string) (remap.Rule, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return remap.Rule{}, p.errorf("rule needs destination, source and length, got %q", text)
	}

	values, err := p.parseInts(fields)
	if err != nil {
		return remap.Rule{}, err
	}

	rule, err := remap.NewRule(values[0], values[1], values[2])
	if err != nil {
		return remap.Rule{}, p.errorf("%v", err)
	}

	return rule, nil
}

func (p *parser) parseInts(fields []string) ([]int64, error) {
	values := make([]int64, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", f)
		}

		values = append(values, v)
	}

	return values, nil
}

func (p *parser) closeSection() error {
	if p.current == nil {
		return nil
	}

	s := *p.current
	p.current = nil
	s.SortRules()

	if err := p.builder.Set(s); err != nil {
		return p.errorf("%v", err)
	}

	return nil
}

func (p *parser) finish() (*Almanac, error) {
	if err := p.closeSection(); err != nil {
		return nil, err
	}

	if !p.seenSeed {
		return nil, fmt.Errorf("missing %q line", seedsPrefix)
	}

	pipeline, err := p.builder.Build()
	if err != nil {
		return nil, err
	}

	return &Almanac{Seeds: p.seeds, Pipeline: pipeline}, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

// Format renders a in the text listing form accepted by Parse.
func Format(a *Almanac) []byte {
	var buf bytes.Buffer

	buf.WriteString(seedsPrefix)

	for _, v := range a.Seeds {
		buf.WriteString(" ")
		buf.WriteString(strconv.FormatInt(v, 10))
	}

	buf.WriteString("\n")

	for _, s := range a.Pipeline.Stages() {
		fmt.Fprintf(&buf, "\n%s%s\n", s.Kind, sectionSuffix)

		for _, rule := range s.Rules {
			buf.WriteString(rule.String())
			buf.WriteString("\n")
		}
	}

	return buf.Bytes()
}
