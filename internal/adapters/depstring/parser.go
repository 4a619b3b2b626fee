// Package depstring parses dependency strings and package IDs.
//
// A dependency string is a whitespace separated list of items. An item is a package
// spec, a blocker ("!spec" or "!!spec"), an all-of group "( ... )", an any-of group
// "|| ( ... )" or a conditional group "flag? ( ... )" / "!flag? ( ... )".
package depstring

import (
	"strings"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/semver"
	"go.trai.ch/zerr"
)

// Parse parses a dependency string into a tree. An empty string yields nil.
func Parse(input string) (domain.DepNode, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, nil
	}

	p := &parser{input: input, tokens: tokens}
	children, err := p.items(false)
	if err != nil {
		return nil, err
	}
	return &domain.AllDepSpec{Children: children}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input string) domain.DepNode {
	node, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return node
}

type parser struct {
	input  string
	tokens []string
	pos    int
}

func (p *parser) fail(msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidDepString, msg), "input", p.input)
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// items reads items until the input ends or, when nested, until the closing parenthesis.
func (p *parser) items(nested bool) ([]domain.DepNode, error) {
	var out []domain.DepNode
	for {
		tok, ok := p.next()
		if !ok {
			if nested {
				return nil, p.fail("missing )")
			}
			return out, nil
		}

		switch {
		case tok == ")":
			if !nested {
				return nil, p.fail("unexpected )")
			}
			return out, nil

		case tok == "(":
			children, err := p.items(true)
			if err != nil {
				return nil, err
			}
			out = append(out, &domain.AllDepSpec{Children: children})

		case tok == "||":
			children, err := p.group()
			if err != nil {
				return nil, err
			}
			out = append(out, &domain.AnyDepSpec{Children: children})

		case strings.HasSuffix(tok, "?"):
			flag := strings.TrimSuffix(tok, "?")
			inverse := strings.HasPrefix(flag, "!")
			flag = strings.TrimPrefix(flag, "!")
			if flag == "" {
				return nil, p.fail("empty conditional")
			}
			children, err := p.group()
			if err != nil {
				return nil, err
			}
			out = append(out, &domain.ConditionalDepSpec{Flag: flag, Inverse: inverse, Children: children})

		default:
			node, err := p.atom(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
		}
	}
}

// group reads a parenthesised group.
func (p *parser) group() ([]domain.DepNode, error) {
	if tok, ok := p.next(); !ok || tok != "(" {
		return nil, p.fail("expected (")
	}
	return p.items(true)
}

func (p *parser) atom(tok string) (domain.DepNode, error) {
	switch {
	case strings.HasPrefix(tok, "!!"):
		spec, err := ParsePackageDepSpec(tok[2:])
		if err != nil {
			return nil, err
		}
		return &domain.BlockDepSpec{Blocking: *spec, Strong: true}, nil
	case strings.HasPrefix(tok, "!"):
		spec, err := ParsePackageDepSpec(tok[1:])
		if err != nil {
			return nil, err
		}
		return &domain.BlockDepSpec{Blocking: *spec}, nil
	default:
		return ParsePackageDepSpec(tok)
	}
}

// ParsePackageDepSpec parses a single package spec of the form
// [op]cat/pkg[-version][*][:slot][::repository][[requirements]]...
//
// Bracketed requirements are either choice requirements ("[flag,-other]") or version
// requirements joined by "&" or "|" ("[>=1.2&<2]").
func ParsePackageDepSpec(input string) (*domain.PackageDepSpec, error) {
	fail := func(msg string) error {
		return zerr.With(zerr.Wrap(domain.ErrInvalidDepString, msg), "input", input)
	}

	s := input
	var op semver.Operator
	for _, candidate := range semver.Operators {
		if strings.HasPrefix(s, string(candidate)) {
			op = candidate
			s = s[len(candidate):]
			break
		}
	}

	var brackets []string
	if i := strings.Index(s, "["); i >= 0 {
		rest := s[i:]
		s = s[:i]
		for rest != "" {
			if rest[0] != '[' {
				return nil, fail("unexpected text after ]")
			}
			end := strings.Index(rest, "]")
			if end < 0 {
				return nil, fail("missing ]")
			}
			brackets = append(brackets, rest[1:end])
			rest = rest[end+1:]
		}
	}

	spec := &domain.PackageDepSpec{}
	if i := strings.Index(s, "::"); i >= 0 {
		spec.Repository = s[i+2:]
		s = s[:i]
		if spec.Repository == "" {
			return nil, fail("empty repository")
		}
	}
	if i := strings.Index(s, ":"); i >= 0 {
		spec.Slot = s[i+1:]
		s = s[:i]
		if spec.Slot == "" {
			return nil, fail("empty slot")
		}
	}

	if op != "" {
		star := false
		if op == semver.OpEqual && strings.HasSuffix(s, "*") {
			star = true
			s = strings.TrimSuffix(s, "*")
		}
		name, version, err := splitNameVersion(s)
		if err != nil {
			return nil, fail("versioned spec without a valid version")
		}
		if star {
			op = semver.OpEqualStar
		}
		s = name
		spec.Versions = []domain.VersionRequirement{{Operator: op, Version: version}}
	}

	if err := validName(s); err != nil {
		return nil, fail(err.Error())
	}
	spec.Name = domain.NewInternedString(s)

	for _, b := range brackets {
		if err := parseBracket(spec, b); err != nil {
			return nil, fail(err.Error())
		}
	}
	return spec, nil
}

// MustParsePackageDepSpec is like ParsePackageDepSpec but panics on error.
func MustParsePackageDepSpec(input string) *domain.PackageDepSpec {
	spec, err := ParsePackageDepSpec(input)
	if err != nil {
		panic(err)
	}
	return spec
}

func parseBracket(spec *domain.PackageDepSpec, content string) error {
	if content == "" {
		return zerr.New("empty []")
	}

	if strings.ContainsAny(content[:1], "<>=~") {
		if len(spec.Versions) > 0 {
			return zerr.New("version requirements given twice")
		}
		sep, mode := "&", domain.RequirementsAnd
		if strings.Contains(content, "|") {
			sep, mode = "|", domain.RequirementsOr
		}
		for _, part := range strings.Split(content, sep) {
			req, err := parseRequirement(part)
			if err != nil {
				return err
			}
			spec.Versions = append(spec.Versions, req)
		}
		spec.VersionsMode = mode
		return nil
	}

	for _, flag := range strings.Split(content, ",") {
		enabled := !strings.HasPrefix(flag, "-")
		flag = strings.TrimPrefix(flag, "-")
		if flag == "" {
			return zerr.New("empty choice requirement")
		}
		spec.Choices = append(spec.Choices, domain.ChoiceRequirement{Flag: flag, Enabled: enabled})
	}
	return nil
}

func parseRequirement(part string) (domain.VersionRequirement, error) {
	for _, op := range semver.Operators {
		if !strings.HasPrefix(part, string(op)) {
			continue
		}
		raw := part[len(op):]
		if op == semver.OpEqual && strings.HasSuffix(raw, "*") {
			op, raw = semver.OpEqualStar, strings.TrimSuffix(raw, "*")
		}
		v, err := semver.ParseVersion(raw)
		if err != nil {
			return domain.VersionRequirement{}, err
		}
		return domain.VersionRequirement{Operator: op, Version: v}, nil
	}
	return domain.VersionRequirement{}, zerr.New("missing operator in " + part)
}

// ParsePackageID splits "cat/pkg-1.2.3-r1" into its name and version.
func ParsePackageID(input string) (domain.InternedString, semver.Version, error) {
	name, version, err := splitNameVersion(input)
	if err != nil {
		return domain.InternedString{}, semver.Version{}, zerr.With(zerr.Wrap(err, "no version found"), "id", input)
	}
	if err := validName(name); err != nil {
		return domain.InternedString{}, semver.Version{}, zerr.With(zerr.Wrap(domain.ErrInvalidPackageID, err.Error()), "id", input)
	}
	return domain.NewInternedString(name), version, nil
}

// splitNameVersion splits at the first "-" after the category that starts a parseable version.
func splitNameVersion(s string) (string, semver.Version, error) {
	slash := strings.Index(s, "/")
	if slash < 0 {
		return "", semver.Version{}, domain.ErrInvalidPackageID
	}
	for i := slash + 1; i < len(s)-1; i++ {
		if s[i] != '-' || s[i+1] < '0' || s[i+1] > '9' {
			continue
		}
		if v, err := semver.ParseVersion(s[i+1:]); err == nil {
			return s[:i], v, nil
		}
	}
	return "", semver.Version{}, domain.ErrInvalidPackageID
}

func validName(name string) error {
	category, pkg, ok := strings.Cut(name, "/")
	if !ok || category == "" || pkg == "" || strings.Contains(pkg, "/") {
		return zerr.New("package names look like category/name")
	}
	return nil
}
