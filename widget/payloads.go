package widget

// Payload schemas, one per kind. Field names follow the CMS JSON.

type Slide struct {
	Title           string `json:"title"`
	Link            string `json:"link"`
	BackgroundImage string `json:"backgroundImage"`
	Thumbnail       string `json:"thumbnail"`
}

type HomeBannerData struct {
	BannerSlides []Slide `json:"bannerslides"`
}

type TitledText struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type TwoColumnSectionData struct {
	Items []TitledText `json:"items"`
}

type AboutItem struct {
	Text string `json:"text"`
}

type Partner struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

type AboutSectionData struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	AboutItems   []AboutItem `json:"aboutItems"`
	ButtonText   string      `json:"buttonText"`
	ButtonLink   string      `json:"buttonLink"`
	MainImage    string      `json:"mainImage"`
	ClientImages []string    `json:"clientImages"`
	ClientCount  string      `json:"clientCount"`
	ClientText   string      `json:"clientText"`
	PartnerCount string      `json:"partnerCount"`
	PartnerText  string      `json:"partnerText"`
	Partners     []Partner   `json:"partners"`
}

type CTASectionData struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ButtonText      string `json:"buttonText"`
	ButtonLink      string `json:"buttonLink"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

type Project struct {
	Image string   `json:"image"`
	Year  string   `json:"year"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Link  string   `json:"link"`
}

type HomeProjectData struct {
	Label       string    `json:"label"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ButtonText  string    `json:"buttonText"`
	ButtonLink  string    `json:"buttonLink"`
	Projects    []Project `json:"projects"`
}

type Blog struct {
	Image  string   `json:"image"`
	Author string   `json:"author"`
	Date   string   `json:"date"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Link   string   `json:"link"`
}

type HomeBlogData struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
	Blogs       []Blog `json:"blogs"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQSectionData struct {
	Label          string    `json:"label"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FAQs           []FAQItem `json:"faqs"`
	CTATitle       string    `json:"ctaTitle"`
	CTADescription string    `json:"ctaDescription"`
	CTAButtonText  string    `json:"ctaButtonText"`
	CTAButtonLink  string    `json:"ctaButtonLink"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Slug        string `json:"slug"`
}

type NamedItem struct {
	Name string `json:"name"`
}

// HomeServiceData accepts both camelCase and the older hyphenated keys for
// the featured service block.
type HomeServiceData struct {
	Label                 string      `json:"label"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	Services              []Service   `json:"services"`
	ServiceTitle          string      `json:"serviceTitle"`
	ServiceTitleAlt       string      `json:"service-title"`
	ServiceDescription    string      `json:"serviceDescription"`
	ServiceDescriptionAlt string      `json:"service-description"`
	ServicesItems         []NamedItem `json:"servicesItems"`
	ServicesItemsAlt      []NamedItem `json:"services-items"`
	CTATitle              string      `json:"ctaTitle"`
	CTADescription        string      `json:"ctaDescription"`
	CTAButtonText         string      `json:"ctaButtonText"`
	CTAButtonLink         string      `json:"ctaButtonLink"`
	CTAImage              string      `json:"ctaImage"`
}

type ProcessStep struct {
	Number      string `json:"number"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomeProcessData struct {
	Label       string        `json:"label"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []ProcessStep `json:"steps"`
}

type InnerBannerData struct {
	Title           string `json:"title"`
	BackgroundImage string `json:"backgroundImage"`
}

type AboutGridImages struct {
	TopLeft    string `json:"topLeft"`
	BottomLeft string `json:"bottomLeft"`
	Right      string `json:"right"`
}

type AboutGridData struct {
	Label       string          `json:"label"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Images      AboutGridImages `json:"images"`
}

type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Image    string `json:"image"`
	LinkedIn string `json:"linkedin"`
}

type AboutTeamData struct {
	Label       string       `json:"label"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Members     []TeamMember `json:"members"`
}

type ServiceOffering struct {
	Title           string      `json:"title"`
	HighlightedWord string      `json:"highlightedWord"`
	Services        []NamedItem `json:"services"`
	CTAText         string      `json:"ctaText"`
	CTALink         string      `json:"ctaLink"`
	Image           string      `json:"image"`
	Video           string      `json:"video"`
	VideoType       string      `json:"videoType"`
}

type ServiceListData struct {
	Services []ServiceOffering `json:"services"`
}

type StatItem struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ImpactStatsData struct {
	Label string     `json:"label"`
	Title string     `json:"title"`
	Stats []StatItem `json:"stats"`
}

type ProjectListData struct {
	Label       string    `json:"label"`
	Title       string    `json:"title"`
	TitleLine2  string    `json:"titleLine2"`
	Description string    `json:"description"`
	Projects    []Project `json:"projects"`
}

type WorkDetailBannerData struct {
	BackLink         string   `json:"backLink"`
	BackLinkText     string   `json:"backLinkText"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ServicesHeading  string   `json:"servicesHeading"`
	Services         []string `json:"services"`
	VisitWebsiteText string   `json:"visitWebsiteText"`
	VisitWebsiteLink string   `json:"visitWebsiteLink"`
	MainImage        string   `json:"mainImage"`
	Client           string   `json:"client"`
	Year             string   `json:"year"`
	Timeline         string   `json:"timeline"`
}

type CaseStudySection struct {
	Heading     string   `json:"heading"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	ImageLayout string   `json:"imageLayout"`
}

type WorkCaseStudyData struct {
	Sections []CaseStudySection `json:"sections"`
}

type Profile struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
}

type ContactForm struct {
	Heading          string `json:"heading"`
	SubmitButtonText string `json:"submitButtonText"`
	TermsText        string `json:"termsText"`
	TermsLink        string `json:"termsLink"`
}

type ReachOut struct {
	Heading string `json:"heading"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Socials struct {
	Heading string       `json:"heading"`
	Links   []SocialLink `json:"links"`
}

type ContactPageData struct {
	Label       string      `json:"label"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Profile     Profile     `json:"profile"`
	ContactForm ContactForm `json:"contactForm"`
	ReachOut    ReachOut    `json:"reachOut"`
	Socials     Socials     `json:"socials"`
}

type BlogListData struct {
	Blogs        []Blog `json:"blogs"`
	LoadMoreText string `json:"loadMoreText"`
	LoadMoreLink string `json:"loadMoreLink"`
}

type BlogDetailBannerData struct {
	BackLink          string   `json:"backLink"`
	BackLinkText      string   `json:"backLinkText"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	CategoriesHeading string   `json:"categoriesHeading"`
	Categories        []string `json:"categories"`
	Tags              []string `json:"tags"`
	ReadArticleText   string   `json:"readArticleText"`
	ReadArticleLink   string   `json:"readArticleLink"`
	MainImage         string   `json:"mainImage"`
	Author            string   `json:"author"`
	Date              string   `json:"date"`
	ReadTime          string   `json:"readTime"`
	SharePlatforms    []string `json:"sharePlatforms"`
}

// ContentBlock is one block of a blog article body. Type is one of
// "heading", "paragraph", "list" or "image".
type ContentBlock struct {
	Type     string   `json:"type"`
	Content  string   `json:"content"`
	Level    int      `json:"level"`
	Items    []string `json:"items"`
	Image    string   `json:"image"`
	ImageAlt string   `json:"imageAlt"`
}

type BlogDetailContentData struct {
	Sections []ContentBlock `json:"sections"`
}

type TabContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Items       []string `json:"items"`
}

type Tab struct {
	Label   string     `json:"label"`
	Content TabContent `json:"content"`
}

type ServiceDetailAboutData struct {
	Tabs []Tab `json:"tabs"`
}
