package entity

type City struct {
	ID     string `json:"id" firestore:"-"`
	Name   string `json:"name" firestore:"name"`
	NameMn string `json:"name_mn,omitempty" firestore:"nameMn"`
	NameCn string `json:"name_cn,omitempty" firestore:"nameCn"`
	Order  int    `json:"order" firestore:"order"`
}

type Banner struct {
	ID       string `json:"id" firestore:"-"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
	Link     string `json:"link,omitempty" firestore:"link"`
	Order    int    `json:"order" firestore:"order"`
	Active   bool   `json:"active" firestore:"active"`
}

// AppVersion is the app_version/live document clients poll to prompt updates.
type AppVersion struct {
	Version      string `json:"version" firestore:"version"`
	MinVersion   string `json:"min_version" firestore:"minVersion"`
	UpdateURL    string `json:"update_url,omitempty" firestore:"updateUrl"`
	ReleaseNotes string `json:"release_notes,omitempty" firestore:"releaseNotes"`
}
