package constant

// Conventional input and output file names, relative to the working directory.
const (
	SiteFile         = "site.toml"
	PublicationsFile = "publication_list.bib"
	TalksFile        = "talk_list.bib"
	OutputFile       = "index.html"
)

// DefaultImage is used for entries that carry no img field.
const DefaultImage = "assets/img/default_project.jpg"
