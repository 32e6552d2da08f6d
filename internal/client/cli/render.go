package cli

import (
	"fmt"
	"io"

	"github.com/storydeck/storydeck/internal/client/views"
)

var sectionTitles = map[views.Section]string{
	views.SectionFeed:      "All Stories",
	views.SectionFavorites: "Favorites",
	views.SectionMine:      "My Stories",
	views.SectionProfile:   "Profile",
	views.SectionComposer:  "Submit a Story",
}

// renderView paints a ViewState as text. This is the external renderer of
// the core: it consumes view models and never reaches back into services
// or state.
func renderView(w io.Writer, state views.ViewState) {
	if state.Denied {
		fmt.Fprintln(w, "Please log in to see that page.")
	}

	fmt.Fprintf(w, "== %s ==\n", sectionTitles[state.ActiveSection])

	if state.Profile != nil {
		fmt.Fprintf(w, "Name:    %s\n", state.Profile.Name)
		fmt.Fprintf(w, "User:    %s\n", state.Profile.Username)
		fmt.Fprintf(w, "Member since: %s\n", state.Profile.CreatedAt.Format("2006-01-02"))
		return
	}

	if state.ActiveSection == views.SectionComposer {
		return
	}

	if len(state.Stories) == 0 {
		fmt.Fprintln(w, "(no stories)")
		return
	}

	for _, vm := range state.Stories {
		fmt.Fprintln(w, storyLine(vm))
	}
}

// storyLine formats one story the way the original list items read:
// star marker, title, host, author, submitter, plus the id needed to
// address the story from the prompt.
func storyLine(vm views.StoryViewModel) string {
	marker := "   "
	if vm.ShowFavoriteIcon {
		if vm.FavoriteActive {
			marker = "[*]"
		} else {
			marker = "[ ]"
		}
	}

	line := fmt.Sprintf("%s %s (%s) by %s | posted by %s | id=%s",
		marker, vm.Title, vm.HostName, vm.Author, vm.Username, vm.StoryID)
	if vm.ShowDeleteIcon {
		line += " [deletable]"
	}
	return line
}
