package update

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/tesso57/atelie/internal/domain/showcase"
	"github.com/tesso57/atelie/internal/presentation/tui/textutil"
)

const detailSectionDivider = "----------------------------------------"

func buildDetailContent(it *showcase.Item, liked bool, related []showcase.Item) string {
	if it == nil {
		return ""
	}

	var b strings.Builder
	title := strings.TrimSpace(it.Name)
	if it.IsFeatured {
		title = "★ " + title
	}
	fmt.Fprintf(&b, "%s\nby %s\n\n", title, it.DeveloperName)

	if desc := strings.TrimSpace(it.Description); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}

	fmt.Fprintf(&b, "%s\n", detailSectionDivider)
	writeField(&b, "Categories", joinCategories(it.Categories))
	writeField(&b, "Platforms", joinPlatforms(it.Platforms))
	writeField(&b, "Audience", it.TargetAudience)
	writeField(&b, "Scale", it.ScaleInfo)
	if it.HasAccolades() {
		writeField(&b, "Accolades", strings.Join(it.Accolades, ", "))
	}

	heart := "♡"
	if liked {
		heart = "♥"
	}
	fmt.Fprintf(&b, "%s %d · %d views", heart, showcase.DisplayLikes(*it, liked), it.ViewCount)
	if it.Kind == showcase.KindIdea {
		fmt.Fprintf(&b, " · %d interested", it.InterestCount)
	}
	b.WriteString("\n")

	if it.Kind == showcase.KindIdea && (it.Problem != "" || it.Solution != "") {
		fmt.Fprintf(&b, "\n%s\n", detailSectionDivider)
		writeSection(&b, "Problem", it.Problem)
		writeSection(&b, "Solution", it.Solution)
	}

	fmt.Fprintf(&b, "\n%s\nRelated %s\n", detailSectionDivider, it.Kind.Plural())
	if len(related) == 0 {
		b.WriteString("(Nothing related yet.)\n")
	}
	for i, r := range related {
		fmt.Fprintf(&b, "%d. %s · %s\n", i+1, r.Name, r.PrimaryCategory())
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildDetailContentForWidth(it *showcase.Item, liked bool, related []showcase.Item, width int) string {
	content := buildDetailContent(it, liked, related)
	if width <= 0 || content == "" {
		return content
	}
	return textutil.Wrap(content, width)
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func writeSection(b *strings.Builder, label, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "%s\n%s\n\n", label, strings.TrimSpace(body))
}

func joinCategories(cs []showcase.Category) string {
	return strings.Join(lo.Map(cs, func(c showcase.Category, _ int) string { return string(c) }), ", ")
}

func joinPlatforms(ps []showcase.Platform) string {
	return strings.Join(lo.Map(ps, func(p showcase.Platform, _ int) string { return string(p) }), ", ")
}
