// Package site holds the hand-maintained homepage data: who the page is about,
// what they built and who funds them.
package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/spf13/viper"
)

//go:embed default.toml
var defaultSite []byte

// ErrNoName is returned for site files that do not name the page owner.
var ErrNoName = errors.New("site has no name")

// Site is the decoded site data file.
type Site struct {
	Name     Name      `mapstructure:"name" json:"name" jsonschema:"required"`
	Bio      string    `mapstructure:"bio" json:"bio,omitempty" jsonschema_description:"Introduction in Markdown. Inline HTML is kept."`
	Footer   string    `mapstructure:"footer" json:"footer,omitempty" jsonschema_description:"Markdown rendered at the bottom of the page."`
	Profile  string    `mapstructure:"profile" json:"profile,omitempty" jsonschema_description:"Path or URL of the profile picture."`
	Favicon  string    `mapstructure:"favicon" json:"favicon,omitempty"`
	Links    []Link    `mapstructure:"links" json:"links,omitempty" jsonschema_description:"Contact and profile links shown under the bio."`
	Authors  []Author  `mapstructure:"authors" json:"authors,omitempty" jsonschema_description:"Co-authors whose names link to their homepage."`
	Products []Product `mapstructure:"products" json:"products,omitempty"`
	Sponsors Sponsors  `mapstructure:"sponsors" json:"sponsors,omitempty"`
}

// Name is the page owner's name.
type Name struct {
	First string `mapstructure:"first" json:"first"`
	Last  string `mapstructure:"last" json:"last"`
}

// Full joins the first and last name.
func (n Name) Full() string {
	if n.First == "" || n.Last == "" {
		return n.First + n.Last
	}
	return n.First + " " + n.Last
}

// Link is a contact link with a Font Awesome icon class.
type Link struct {
	Label string `mapstructure:"label" json:"label" jsonschema:"required"`
	Icon  string `mapstructure:"icon" json:"icon,omitempty"`
	URL   string `mapstructure:"url" json:"url" jsonschema:"required"`
}

// Author maps a co-author's display name to their homepage.
type Author struct {
	Name string `mapstructure:"name" json:"name" jsonschema:"required"`
	URL  string `mapstructure:"url" json:"url" jsonschema:"required"`
}

// Product is an industry project shown in the products section.
type Product struct {
	Name    string   `mapstructure:"name" json:"name" jsonschema:"required"`
	Img     string   `mapstructure:"img" json:"img,omitempty"`
	Video   string   `mapstructure:"video" json:"video,omitempty"`
	Desc    string   `mapstructure:"desc" json:"desc,omitempty"`
	Contrib []string `mapstructure:"contrib" json:"contrib,omitempty"`
	Link    string   `mapstructure:"link" json:"link,omitempty"`
}

// Sponsors is the funding section.
type Sponsors struct {
	Intro string    `mapstructure:"intro" json:"intro,omitempty" jsonschema_description:"Markdown sentence above the logos."`
	List  []Sponsor `mapstructure:"list" json:"list,omitempty"`
}

// Sponsor is a single funding source.
type Sponsor struct {
	Name  string `mapstructure:"name" json:"name" jsonschema:"required"`
	Short string `mapstructure:"short" json:"short,omitempty"`
	Logo  string `mapstructure:"logo" json:"logo" jsonschema:"required"`
	Link  string `mapstructure:"link" json:"link,omitempty"`
}

// AuthorLinks returns the co-author homepages keyed by display name.
func (s *Site) AuthorLinks() map[string]string {
	return lo.SliceToMap(s.Authors, func(a Author) (string, string) {
		return a.Name, a.URL
	})
}

// Validate reports structural problems that would break the page.
func (s *Site) Validate() error {
	if s.Name.Full() == "" {
		return ErrNoName
	}

	for i, p := range s.Products {
		if p.Name == "" {
			return fmt.Errorf("product #%d has no name", i+1)
		}
	}

	for i, sp := range s.Sponsors.List {
		if sp.Logo == "" {
			return fmt.Errorf("sponsor #%d (%s) has no logo", i+1, sp.Name)
		}
	}

	return nil
}

// Default returns the built-in example site.
func Default() (*Site, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(defaultSite)); err != nil {
		return nil, fmt.Errorf("read built-in site: %w", err)
	}
	return decode(v)
}

// DefaultSource returns the built-in example site file.
func DefaultSource() []byte {
	return bytes.Clone(defaultSite)
}

// Load reads the site file at path. The format follows the file extension:
// toml, yaml, yml or json. An empty path yields the built-in example site.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}

	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read site file %s: %w", path, err)
	}

	s, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func decode(v *viper.Viper) (*Site, error) {
	var s Site
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode site: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
