package console

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// parseMpath will split p into its path segments.
// After parsing each element of mpath will either be a literal
// segment or a parameter starting with ":".
func parseMpath(p string) (mpath, error) {

	p = path.Clean("/" + p)
	if p == "/" {
		return mpath{}, nil
	}

	parts := strings.Split(p[1:], "/")
	ret := make(mpath, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		if strings.HasPrefix(part, ":") {
			name := part[1:]
			if name == "" {
				return nil, fmt.Errorf("empty parameter name in %q", p)
			}
			if seen[name] {
				return nil, fmt.Errorf("duplicate parameter %q in %q", name, p)
			}
			seen[name] = true
		}
		ret = append(ret, part)
	}

	return ret, nil
}

// splitPath cleans p and returns its segments, the root path has none.
func splitPath(p string) []string {
	p = path.Clean("/" + p)
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}

// mpath is a matchable-path.  It's the path pattern split into segments.
type mpath []string

func isParam(seg string) bool { return strings.HasPrefix(seg, ":") }

// paramNames will return the parameter names
// without the preceding colon, i.e. the path "/somewhere/:p1/:p2"
// will return []string{"p1","p2"}
func (mp mpath) paramNames() []string {
	var ret []string
	for _, p := range mp {
		if isParam(p) {
			ret = append(ret, p[1:])
		}
	}
	return ret
}

// String returns the re-assembled path pattern
func (mp mpath) String() string {
	return "/" + strings.Join(mp, "/")
}

var errMissingParam = errors.New("missing param")

// merge will use any values provided for the appropriate path params
// and return the constructed path.  A missing param value will cause
// errMissingParam to be returned but will still return the path with
// the missing param(s) replaced with "_".  The otherValues will
// be populated with all values not merged into the output path.
func (mp mpath) merge(v url.Values) (outPath string, otherValues url.Values, reterr error) {

	if len(v) > 0 {
		otherValues = make(url.Values, len(v))
		for k, val := range v {
			otherValues[k] = val
		}
	}

	var sb strings.Builder
	sb.Grow(64)

	if len(mp) == 0 {
		sb.WriteString("/")
	}

	for _, p := range mp {
		sb.WriteString("/")
		if isParam(p) {
			pname := p[1:]
			vlist := v[pname]
			if len(vlist) == 0 || vlist[0] == "" { // an empty segment would change the segment count
				reterr = errMissingParam
				sb.WriteString("_")
				continue
			}
			sb.WriteString(url.PathEscape(vlist[0]))
			otherValues.Del(pname)
			continue
		}
		sb.WriteString(p)
	}

	if len(otherValues) == 0 {
		otherValues = nil
	}

	return sb.String(), otherValues, reterr
}

// match compares our mpath to the escaped path provided and returns the
// parameter values plus ok true if it matches.  Matching is structural: the
// segment count must be equal, literal segments must be equal and every
// parameter binds exactly one segment.  Segments are split before they are
// unescaped so an encoded "/" stays inside its parameter.
func (mp mpath) match(p string) (paramValues url.Values, ok bool) {

	segs := splitPath(p)
	if len(segs) != len(mp) {
		return nil, false
	}

	for i, mpart := range mp {
		if isParam(mpart) {
			if paramValues == nil {
				paramValues = make(url.Values, 2)
			}
			paramValues.Set(mpart[1:], unescapeSegment(segs[i]))
			continue
		}
		if mpart != unescapeSegment(segs[i]) {
			return nil, false
		}
	}

	return paramValues, true
}

func unescapeSegment(seg string) string {
	v, err := url.PathUnescape(seg)
	if err != nil {
		return seg
	}
	return v
}

// covers returns true if every path matched by other is also matched by mp.
func (mp mpath) covers(other mpath) bool {
	if len(mp) != len(other) {
		return false
	}
	for i := range mp {
		if isParam(mp[i]) {
			continue
		}
		if isParam(other[i]) || mp[i] != other[i] {
			return false
		}
	}
	return true
}
