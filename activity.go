package discordrp

// Activity is a convenience shape for the rich-presence payload. Set also
// accepts any JSON-serializable value: the schema is owned and validated
// by the Discord client, not here. One of State, Details, or
// Timestamps.Start is required by the remote side.
type Activity struct {
	State      string      `json:"state,omitempty"`
	Details    string      `json:"details,omitempty"`
	Timestamps *Timestamps `json:"timestamps,omitempty"`
	Assets     *Assets     `json:"assets,omitempty"`
	Buttons    []Button    `json:"buttons,omitempty"`
}

// Timestamps are Unix seconds bounding the displayed elapsed/remaining time.
type Timestamps struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

// Assets reference image keys uploaded to the application's asset library.
type Assets struct {
	LargeImage string `json:"large_image,omitempty"`
	LargeText  string `json:"large_text,omitempty"`
	SmallImage string `json:"small_image,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
}

// Button is one clickable link under the activity; at most two are shown.
type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
