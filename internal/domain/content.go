package domain

// Secciones singleton del sitio publico. Cada una se persiste como una sola
// fila identificada por una clave fija; el orden de las listas lo decide el
// cliente via el campo Order.

type HeroSection struct {
	Name             string `json:"name"`
	StatusBadge      string `json:"status_badge"`
	StatusVisible    bool   `json:"status_visible"`
	Headline         string `json:"headline"`
	Subheadline      string `json:"subheadline"`
	CTAPrimaryText   string `json:"cta_primary_text"`
	CTASecondaryText string `json:"cta_secondary_text"`
}

type AboutSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactSection struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Email            string `json:"email"`
	Location         string `json:"location"`
	ResponseTimeText string `json:"response_time_text"`
}

type SiteSettings struct {
	SiteName        string   `json:"site_name"`
	SiteTitle       string   `json:"site_title"`
	SiteDescription string   `json:"site_description"`
	SiteKeywords    []string `json:"site_keywords"`
	AuthorName      string   `json:"author_name"`
	LogoText        string   `json:"logo_text"`
	FooterTagline   string   `json:"footer_tagline"`
	CopyrightName   string   `json:"copyright_name"`
	OGImage         string   `json:"og_image,omitempty"`
}

type Skill struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

type Technology struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type Stat struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
	Visible  bool   `json:"visible"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
