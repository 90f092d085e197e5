package component

import (
	"html/template"
	"net/url"

	"github.com/shopspring/decimal"
)

// View models handed to the canonical partials. Each one is filled from a Record before
// rendering so the partials never probe attributes themselves.

type HeroView struct {
	Title       string
	Subtitle    string
	ImageURL    string
	LogoURL     string
	ButtonText  string
	ButtonURL   string
	Description string
}

func heroView(rec Record) HeroView {
	return HeroView{
		Title:       Str(rec, "title", "headline", "businessName"),
		Subtitle:    Str(rec, "subtitle", "tagline"),
		Description: Str(rec, "description", "text"),
		ImageURL:    Str(rec, "backgroundImageUrl", "coverImageUrl", "imageUrl"),
		LogoURL:     Str(rec, "logoUrl", "avatarUrl"),
		ButtonText:  Str(rec, "buttonText", "ctaText"),
		ButtonURL:   Str(rec, "buttonUrl", "ctaUrl", "actionValue"),
	}
}

type GalleryView struct {
	Title  string
	Images []string
}

func galleryView(rec Record) GalleryView {
	return GalleryView{
		Title:  Str(rec, "title"),
		Images: Strings(rec, "imageUrls"),
	}
}

type VideoView struct {
	Title string
	URL   string
}

func videoView(rec Record) VideoView {
	v := VideoView{
		Title: Str(rec, "title", "caption"),
		URL:   Str(rec, "videoUrl", "url"),
	}
	if v.URL == "" {
		// legacy VideoComponent keeps a list of {videoUrl}
		if videos := Records(rec, "videos"); len(videos) > 0 {
			v.URL = Str(videos[0], "videoUrl", "url")
		}
	}
	return v
}

type MapView struct {
	Title   string
	Address string
	Link    string
}

func mapView(rec Record) MapView {
	return MapView{
		Title:   Str(rec, "title", "label"),
		Address: Str(rec, "address", "placeName"),
		Link:    mapsLink(rec),
	}
}

func mapsLink(rec Record) string {
	query := Str(rec, "address", "placeName")
	lat, okLat := Number(rec, "latitude", "lat")
	lng, okLng := Number(rec, "longitude", "lng")
	if okLat && okLng {
		query = lat.String() + "," + lng.String()
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

type HeadingView struct {
	Text     string
	Subtitle string
	Align    string
}

func headingView(rec Record) HeadingView {
	return HeadingView{
		Text:     Str(rec, "text", "title", "heading"),
		Subtitle: Str(rec, "subtitle", "subheading"),
		Align:    orDefault(Str(rec, "alignment", "align"), "left"),
	}
}

type BioView struct {
	Title    string
	Text     string
	ImageURL string
}

func bioView(rec Record) BioView {
	return BioView{
		Title:    orDefault(Str(rec, "title"), "About"),
		Text:     Str(rec, "bio", "text", "description"),
		ImageURL: Str(rec, "imageUrl", "avatarUrl"),
	}
}

type ContactView struct {
	Title    string
	Phone    string
	WhatsApp string
	Email    string
	Address  string
	Website  string
}

func (v ContactView) HasActions() bool {
	return v.Phone != "" || v.WhatsApp != "" || v.Email != "" || v.Website != ""
}

func contactView(rec Record) ContactView {
	return ContactView{
		Title:    orDefault(Str(rec, "title", "label"), "Contact Us"),
		Phone:    Str(rec, "phone", "phoneNumber"),
		WhatsApp: Str(rec, "whatsapp", "whatsappNumber"),
		Email:    Str(rec, "email"),
		Address:  Str(rec, "address"),
		Website:  Str(rec, "website", "websiteUrl"),
	}
}

type Testimonial struct {
	Quote     string
	Author    string
	Role      string
	AvatarURL string
	Rating    int
}

type TestimonialView struct {
	Title string
	Items []Testimonial
}

func testimonialView(rec Record) TestimonialView {
	v := TestimonialView{Title: orDefault(Str(rec, "title"), "Testimonials")}
	for _, t := range Records(rec, "testimonials") {
		rating, _ := Number(t, "rating")
		v.Items = append(v.Items, Testimonial{
			Quote:     Str(t, "quote", "text", "content"),
			Author:    Str(t, "authorName", "author", "name"),
			Role:      Str(t, "authorTitle", "role"),
			AvatarURL: Str(t, "authorImageUrl"),
			Rating:    int(rating.IntPart()),
		})
	}
	return v
}

type CTAView struct {
	Title       string
	Description string
	Text        string
	URL         string
}

func ctaView(rec Record) CTAView {
	v := CTAView{
		Title:       Str(rec, "title", "headline"),
		Description: Str(rec, "description", "subtitle"),
		Text:        orDefault(Str(rec, "buttonText", "text"), "Action"),
		URL:         Str(rec, "buttonUrl", "url"),
	}
	// legacy CallToActionComponent only links out for viewWebsite actions
	if v.URL == "" && Str(rec, "actionType") == "viewWebsite" {
		v.URL = Str(rec, "actionValue")
	}
	return v
}

type PricePlan struct {
	Name        string
	Price       string
	Currency    string
	Period      string
	Features    []string
	Highlighted bool
	ButtonText  string
	ButtonURL   string
}

type PricingView struct {
	Title string
	Plans []PricePlan
}

func pricingView(rec Record) PricingView {
	v := PricingView{Title: orDefault(Str(rec, "title"), "Pricing")}
	for _, p := range Records(rec, "plans", "tiers", "items") {
		price := ""
		if d, ok := Number(p, "price", "amount"); ok {
			price = FormatAmount(d)
		}
		v.Plans = append(v.Plans, PricePlan{
			Name:        Str(p, "name", "title"),
			Price:       price,
			Currency:    Str(p, "currency"),
			Period:      Str(p, "period", "billingPeriod"),
			Features:    Strings(p, "features"),
			Highlighted: Bool(p, "highlighted") || Bool(p, "isPopular"),
			ButtonText:  orDefault(Str(p, "buttonText"), "Choose"),
			ButtonURL:   Str(p, "buttonUrl", "url"),
		})
	}
	return v
}

type QA struct {
	Question string
	Answer   string
}

type FAQView struct {
	Title string
	Items []QA
}

func faqView(rec Record) FAQView {
	v := FAQView{Title: orDefault(Str(rec, "title"), "Frequently Asked Questions")}
	for _, q := range Records(rec, "faqs", "items", "questions") {
		v.Items = append(v.Items, QA{
			Question: Str(q, "question", "title"),
			Answer:   Str(q, "answer", "text"),
		})
	}
	return v
}

type Feature struct {
	Title       string
	Description string
	Icon        string
}

type FeatureListView struct {
	Title    string
	Features []Feature
}

func featureListView(rec Record) FeatureListView {
	v := FeatureListView{Title: Str(rec, "title")}
	for _, item := range List(rec, "features", "items") {
		if s := scalarString(item); s != "" {
			v.Features = append(v.Features, Feature{Title: s})
			continue
		}
		if f, ok := asRecord(item); ok {
			v.Features = append(v.Features, Feature{
				Title:       Str(f, "title", "name"),
				Description: Str(f, "description", "text"),
				Icon:        Str(f, "icon"),
			})
		}
	}
	return v
}

type Member struct {
	Name     string
	Role     string
	Bio      string
	ImageURL string
}

type TeamView struct {
	Title   string
	Members []Member
}

func teamView(rec Record) TeamView {
	v := TeamView{Title: orDefault(Str(rec, "title"), "Our Team")}
	for _, m := range Records(rec, "members", "team", "items") {
		v.Members = append(v.Members, Member{
			Name:     Str(m, "name"),
			Role:     Str(m, "role", "position", "title"),
			Bio:      Str(m, "bio", "description"),
			ImageURL: URLOf(m["imageUrl"]),
		})
	}
	return v
}

type Event struct {
	Date        string
	Title       string
	Description string
}

type TimelineView struct {
	Title  string
	Events []Event
}

func timelineView(rec Record) TimelineView {
	v := TimelineView{Title: Str(rec, "title")}
	for _, e := range Records(rec, "events", "items", "milestones") {
		v.Events = append(v.Events, Event{
			Date:        Str(e, "date", "year"),
			Title:       Str(e, "title"),
			Description: Str(e, "description", "text"),
		})
	}
	return v
}

type File struct {
	Name string
	URL  string
	Size string
}

type FileDownloadView struct {
	Title string
	Files []File
}

func fileDownloadView(rec Record) FileDownloadView {
	v := FileDownloadView{Title: orDefault(Str(rec, "title"), "Downloads")}
	for _, f := range Records(rec, "files", "downloads", "items") {
		v.Files = append(v.Files, File{
			Name: orDefault(Str(f, "name", "fileName", "title"), "Download"),
			URL:  Str(f, "url", "fileUrl"),
			Size: Str(f, "size", "fileSize"),
		})
	}
	return v
}

type PortfolioItem struct {
	Title       string
	Description string
	ImageURL    string
	URL         string
}

type PortfolioView struct {
	Title string
	Items []PortfolioItem
}

func portfolioView(rec Record) PortfolioView {
	v := PortfolioView{Title: orDefault(Str(rec, "title"), "Portfolio")}
	for _, p := range Records(rec, "items", "projects") {
		v.Items = append(v.Items, PortfolioItem{
			Title:       Str(p, "title", "name"),
			Description: Str(p, "description"),
			ImageURL:    URLOf(p["imageUrl"]),
			URL:         Str(p, "url", "link"),
		})
	}
	return v
}

type Service struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
}

type ServiceListView struct {
	Title    string
	Services []Service
}

func serviceListView(rec Record) ServiceListView {
	v := ServiceListView{Title: orDefault(Str(rec, "title"), "Services")}
	for _, s := range Records(rec, "services", "items") {
		price := Str(s, "priceText")
		if d, ok := Number(s, "price"); ok && price == "" {
			price = FormatAmount(d)
		}
		v.Services = append(v.Services, Service{
			Name:        Str(s, "name", "title"),
			Description: Str(s, "description"),
			Price:       price,
			ImageURL:    URLOf(s["imageUrl"]),
		})
	}
	return v
}

type BookingView struct {
	Name        string
	Description string
	Price       string
	URL         string
	ImageURL    string
}

func bookingView(rec Record) BookingView {
	price := Str(rec, "startingPrice", "price")
	if d, ok := Number(rec, "startingPrice", "price"); ok {
		price = FormatAmount(d)
	}
	return BookingView{
		Name:        orDefault(Str(rec, "serviceName", "title"), "Service"),
		Description: Str(rec, "serviceDescription", "description"),
		Price:       price,
		URL:         Str(rec, "bookingUrl", "url"),
		ImageURL:    Str(rec, "imageUrl"),
	}
}

type Award struct {
	Title    string
	Issuer   string
	Year     string
	ImageURL string
}

type AwardsView struct {
	Title  string
	Awards []Award
}

func awardsView(rec Record) AwardsView {
	v := AwardsView{Title: orDefault(Str(rec, "title"), "Awards")}
	for _, a := range Records(rec, "awards", "items") {
		v.Awards = append(v.Awards, Award{
			Title:    Str(a, "title", "name"),
			Issuer:   Str(a, "issuer", "organization"),
			Year:     Str(a, "year", "date"),
			ImageURL: URLOf(a["imageUrl"]),
		})
	}
	return v
}

type TabView struct {
	Title string
	Icon  string
	Body  template.HTML
}

type TabbedContentView struct {
	Title string
	Tabs  []TabView
}

// legacy views, drawn by the fixed builders in legacy.go

type ProductHeaderView struct {
	Name          string
	Currency      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
}

// Discounted reports whether the original price should be shown struck through.
func (v ProductHeaderView) Discounted() bool {
	return v.OriginalPrice.GreaterThan(v.Price)
}

func productHeaderView(rec Record) ProductHeaderView {
	price, _ := Number(rec, "price")
	orig, _ := Number(rec, "originalPrice")
	return ProductHeaderView{
		Name:          Str(rec, "productName", "name"),
		Currency:      orDefault(Str(rec, "currency"), "$"),
		Price:         price,
		OriginalPrice: orig,
	}
}

type SpecRow struct {
	Key   string
	Value string
}

func specRows(rec Record) []SpecRow {
	var rows []SpecRow
	switch specs := rec["specs"].(type) {
	case map[string]any:
		// object key order is not kept by the decoder, so rows are sorted by key
		for _, k := range sortedKeys(specs) {
			rows = append(rows, SpecRow{Key: k, Value: scalarString(specs[k])})
		}
	case []any:
		for _, item := range specs {
			if r, ok := asRecord(item); ok {
				rows = append(rows, SpecRow{
					Key:   Str(r, "key", "label", "name"),
					Value: Str(r, "value"),
				})
			}
		}
	}
	return rows
}

type Comment struct {
	User      string
	Text      string
	AvatarURL string
}

const placeholderAvatar = "https://via.placeholder.com/40/333/fff?text=U"

func comments(rec Record) []Comment {
	var out []Comment
	for _, c := range Records(rec, "comments") {
		out = append(out, Comment{
			User:      orDefault(Str(c, "userName"), "User"),
			Text:      Str(c, "commentText"),
			AvatarURL: orDefault(Str(c, "userAvatarUrl"), placeholderAvatar),
		})
	}
	return out
}
