package domain

// BuildConfig is immutable after construction: the build output directory,
// architecture tag, toolchain argv prefixes, flags, include-directory
// flags, and platform-specific filename extensions. Spec.md §3.
type BuildConfig struct {
	buildDir    string
	arch        string
	cc          []string
	ld          []string
	ar          []string
	cflags      []string
	ldflags     []string
	includeDirs []string // each entry already carries its "-I" prefix
	objExt      string
	libExt      string
	execExt     string
	readLimit   int64
}

// BuildConfigParams is the plain-data form used to construct a
// BuildConfig; it mirrors what internal/adapters/config decodes from YAML.
type BuildConfigParams struct {
	BuildDir    string
	Arch        string
	CC          []string
	LD          []string
	AR          []string
	CFlags      []string
	LDFlags     []string
	IncludeDirs []string
	ObjExt      string
	LibExt      string
	ExecExt     string
	// ReadLimit bounds FileOps.ReadEntireFile; zero means "use the default".
	ReadLimit int64
}

const defaultReadLimit int64 = 64 << 20 // 64 MiB

// NewBuildConfig builds an immutable BuildConfig from params, defensively
// copying every slice so later mutation of the caller's params cannot
// perturb a config already handed to the build engine.
func NewBuildConfig(p BuildConfigParams) *BuildConfig {
	limit := p.ReadLimit
	if limit <= 0 {
		limit = defaultReadLimit
	}
	return &BuildConfig{
		buildDir:    p.BuildDir,
		arch:        p.Arch,
		cc:          copyStrings(p.CC),
		ld:          copyStrings(p.LD),
		ar:          copyStrings(p.AR),
		cflags:      copyStrings(p.CFlags),
		ldflags:     copyStrings(p.LDFlags),
		includeDirs: copyStrings(p.IncludeDirs),
		objExt:      p.ObjExt,
		libExt:      p.LibExt,
		execExt:     p.ExecExt,
		readLimit:   limit,
	}
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (c *BuildConfig) BuildDir() string      { return c.buildDir }
func (c *BuildConfig) Arch() string          { return c.arch }
func (c *BuildConfig) CC() []string          { return copyStrings(c.cc) }
func (c *BuildConfig) LD() []string          { return copyStrings(c.ld) }
func (c *BuildConfig) AR() []string          { return copyStrings(c.ar) }
func (c *BuildConfig) CFlags() []string      { return copyStrings(c.cflags) }
func (c *BuildConfig) LDFlags() []string     { return copyStrings(c.ldflags) }
func (c *BuildConfig) IncludeDirs() []string { return copyStrings(c.includeDirs) }
func (c *BuildConfig) ObjExt() string        { return c.objExt }
func (c *BuildConfig) LibExt() string        { return c.libExt }
func (c *BuildConfig) ExecExt() string       { return c.execExt }
func (c *BuildConfig) ReadLimit() int64      { return c.readLimit }
