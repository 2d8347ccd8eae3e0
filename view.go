package knowbase

import "strings"

// View is the browsing state of an interactive session: which topic and
// subtopic are selected and what the user is searching for.
type View struct {
	Topic    string
	Subtopic string
	Query    string
}

// SelectTopic makes topic the active topic. Selecting the active topic
// again clears it. The active subtopic is always cleared.
func (v *View) SelectTopic(topic string) {
	if v.Topic == topic {
		v.Topic = ""
	} else {
		v.Topic = topic
	}
	v.Subtopic = ""
}

// SelectSubtopic makes subtopic the active subtopic. Selecting the active
// subtopic again clears it.
func (v *View) SelectSubtopic(subtopic string) {
	if v.Subtopic == subtopic {
		v.Subtopic = ""
		return
	}
	v.Subtopic = subtopic
}

// Search sets the free-text query. A blank query clears the search.
func (v *View) Search(query string) {
	v.Query = strings.TrimSpace(query)
}

// ShowAll clears the topic and subtopic selection.
func (v *View) ShowAll() {
	v.Topic = ""
	v.Subtopic = ""
}

// Added focuses the view on a freshly added entry's topic.
func (v *View) Added(e *Entry) {
	v.Topic = e.Topic
	v.Subtopic = ""
	v.Query = ""
}

// Filter returns the EntryFilter for the current view.
func (v *View) Filter() EntryFilter {
	var filter EntryFilter
	if v.Query != "" {
		filter.Query = v.Query
		return filter
	}
	if v.Topic != "" {
		topic := v.Topic
		filter.Topic = &topic
	}
	if v.Subtopic != "" {
		subtopic := v.Subtopic
		filter.Subtopic = &subtopic
	}
	return filter
}

// Heading returns the title for the current view.
func (v *View) Heading() string {
	switch {
	case v.Query != "":
		return "Search: " + v.Query
	case v.Topic != "" && v.Subtopic != "":
		return v.Topic + " / " + v.Subtopic
	case v.Topic != "":
		return v.Topic
	case v.Subtopic != "":
		return "All Topics / " + v.Subtopic
	default:
		return "All Topics"
	}
}
