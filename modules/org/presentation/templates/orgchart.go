package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/apper-apps/india-website-drive/components/base"
	"github.com/apper-apps/india-website-drive/modules/org/presentation/viewmodels"
	"github.com/apper-apps/india-website-drive/pkg/intl"
)

// ChartContainerID is the element swapped by every toggle.
const ChartContainerID = "org-chart"

const toggleButtonClass = "p-1 bg-transparent hover:bg-white/20 text-current border-0 shadow-none transform-none hover:scale-100 focus:ring-offset-0"

// OrgChartNode renders one node and, when it is expanded, recurses into its children.
func OrgChartNode(node viewmodels.OrgChartNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		writeNode(ctx, w, node)
		return w.Err()
	})
}

func writeNode(ctx context.Context, w *base.Writer, node viewmodels.OrgChartNode) {
	w.Open("div",
		base.A("class", "flex flex-col items-center"),
		base.A("data-node-id", node.ID),
		base.A("data-level", strconv.Itoa(node.Level)))
	w.Open("div", base.A("class", "relative"))
	w.Open("div", base.A("class", node.Class))
	w.Open("div", base.A("class", "flex items-center justify-center gap-2"))
	w.Element("span", node.Title, base.A("class", "text-sm md:text-base"), base.Flag("data-title"))
	if node.Expandable {
		writeToggle(ctx, w, node)
	}
	w.Close("div", "div")
	open := node.Expandable && node.Expanded
	if open {
		w.Open("div",
			base.A("class", "absolute top-full left-1/2 transform -translate-x-1/2 w-0.5 h-6 bg-gray-400"),
			base.Flag("data-connector"))
		w.Close("div")
	}
	w.Close("div")

	if open {
		w.Open("div", base.A("class", "mt-6 flex flex-col items-center"), base.Flag("data-children"))
		if len(node.Spacers) > 0 {
			w.Open("div", base.A("class", "w-full max-w-[600px] h-0.5 bg-gray-400 mb-6 relative"), base.Flag("data-connector-bar"))
			for _, left := range node.Spacers {
				w.Open("div",
					base.A("class", "absolute top-0 w-0.5 h-6 bg-gray-400"),
					base.A("style", fmt.Sprintf("left: %s%%; transform: translateX(-50%%)", strconv.FormatFloat(left, 'f', 4, 64))),
					base.Flag("data-spacer"))
				w.Close("div")
			}
			w.Close("div")
		}
		w.Open("div", base.A("class", "flex flex-wrap justify-center gap-8"))
		for _, child := range node.Children {
			writeNode(ctx, w, child)
		}
		w.Close("div", "div")
	}
	w.Close("div")
}

func writeToggle(ctx context.Context, w *base.Writer, node viewmodels.OrgChartNode) {
	label := intl.MustT(ctx, "OrgChart.Expand")
	icon := "chevron-down"
	if node.Expanded {
		label = intl.MustT(ctx, "OrgChart.Collapse")
		icon = "chevron-up"
	}
	w.Open("form",
		base.A("method", "post"),
		base.A("action", node.ToggleURL),
		base.A("hx-post", node.ToggleURL),
		base.A("hx-target", "#"+ChartContainerID),
		base.A("hx-swap", "outerHTML"),
		base.A("class", "inline-flex"))
	w.Open("button",
		base.A("type", "submit"),
		base.A("class", base.ButtonClass("primary", "sm", toggleButtonClass)),
		base.A("aria-expanded", strconv.FormatBool(node.Expanded)),
		base.A("aria-label", label+": "+node.Title),
		base.Flag("data-toggle"))
	w.Str(base.IconSVG(icon, "w-4 h-4"))
	w.Close("button", "form")
}

// OrgChart is the swappable chart container; toggles replace it as a whole.
func OrgChart(chart *viewmodels.OrgChart) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		w.Open("div",
			base.A("id", ChartContainerID),
			base.A("class", "bg-white rounded-xl shadow-lg p-8 overflow-x-auto"),
			base.A("data-view-id", chart.ViewID),
			base.A("data-total-nodes", strconv.Itoa(chart.TotalNodes)),
			base.A("data-visible-nodes", strconv.Itoa(chart.VisibleNodes)))
		if len(chart.Roots) == 0 {
			w.Render(ctx, base.EmptyState(base.EmptyStateProps{
				Title:   intl.MustT(ctx, "OrgChart.Empty.Title"),
				Message: intl.MustT(ctx, "OrgChart.Empty.Message"),
			}))
		} else {
			w.Open("div", base.A("class", "min-w-[800px] flex justify-center"))
			for _, root := range chart.Roots {
				writeNode(ctx, w, root)
			}
			w.Close("div")
		}
		w.Close("div")
		return w.Err()
	})
}

// OrgChartSection wraps the chart with its heading and usage hint.
func OrgChartSection(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		w.Open("section", base.A("id", "organization"), base.A("class", "py-16 bg-background"))
		w.Open("div", base.A("class", "container mx-auto px-4"))
		w.Open("div", base.A("class", "text-center mb-12"))
		w.Element("h2", intl.MustT(ctx, "OrgChart.Title"), base.A("class", "text-4xl font-bold text-gray-900 mb-4"))
		w.Open("div", base.A("class", "w-24 h-1 bg-gradient-to-r from-primary to-secondary mx-auto mb-6"))
		w.Close("div")
		w.Element("p", intl.MustT(ctx, "OrgChart.Subtitle"), base.A("class", "text-lg text-gray-600 max-w-2xl mx-auto"))
		w.Close("div")
		w.Render(ctx, content)
		w.Open("div", base.A("class", "mt-8 text-center"))
		w.Element("p", intl.MustT(ctx, "OrgChart.Hint"), base.A("class", "text-gray-600"))
		w.Close("div", "div", "section")
		return w.Err()
	})
}

// OrgChartError replaces the chart container when the structure cannot be loaded.
func OrgChartError(retryURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		w.Open("div", base.A("id", ChartContainerID))
		w.Render(ctx, base.ErrorState(base.ErrorStateProps{
			Title:       intl.MustT(ctx, "OrgChart.Error.Title"),
			Message:     intl.MustT(ctx, "OrgChart.Error.Message"),
			RetryURL:    retryURL,
			RetryTarget: "#" + ChartContainerID,
			RetryLabel:  intl.MustT(ctx, "OrgChart.Error.Retry"),
		}))
		w.Close("div")
		return w.Err()
	})
}

// OrgChartPlaceholder loads the chart with htmx once it is on screen.
func OrgChartPlaceholder(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		w.Open("div",
			base.A("id", ChartContainerID),
			base.A("hx-get", src),
			base.A("hx-trigger", "load"),
			base.A("hx-swap", "outerHTML"))
		w.Render(ctx, base.ChartSkeleton())
		w.Open("noscript")
		w.Element("a", intl.MustT(ctx, "OrgChart.Open"), base.A("class", "text-primary underline"), base.A("href", src))
		w.Close("noscript", "div")
		return w.Err()
	})
}
