package base

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Cn joins class lists, letting later Tailwind utilities override earlier ones.
func Cn(classes ...string) string {
	return twmerge.Merge(classes...)
}

const buttonBase = "font-medium rounded-lg transition-all duration-200 transform hover:scale-105 active:scale-95 focus:outline-none focus:ring-2 focus:ring-primary/50 focus:ring-offset-2"

var buttonVariants = map[string]string{
	"primary":   "bg-gradient-to-r from-primary to-secondary hover:from-primary/90 hover:to-secondary/90 text-white shadow-lg",
	"secondary": "bg-white border-2 border-primary text-primary hover:bg-primary hover:text-white",
	"accent":    "bg-gradient-to-r from-accent to-orange-500 hover:from-accent/90 hover:to-orange-500/90 text-white shadow-lg",
	"outline":   "border-2 border-gray-300 text-gray-700 hover:border-primary hover:text-primary bg-white",
}

var buttonSizes = map[string]string{
	"sm": "px-4 py-2 text-sm",
	"md": "px-6 py-3 text-base",
	"lg": "px-8 py-4 text-lg",
}

// ButtonClass falls back to the primary variant and md size for unknown names.
func ButtonClass(variant, size string, extra ...string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants["primary"]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes["md"]
	}
	return Cn(append([]string{buttonBase, v, s}, extra...)...)
}

const cardBase = "rounded-lg transition-all duration-300 transform hover:scale-[1.02]"

var cardVariants = map[string]string{
	"default":  "bg-white shadow-md hover:shadow-lg",
	"elevated": "bg-white shadow-lg hover:shadow-xl",
	"gradient": "bg-gradient-to-br from-primary/5 to-secondary/5 shadow-md hover:shadow-lg",
}

func CardClass(variant string, extra ...string) string {
	v, ok := cardVariants[variant]
	if !ok {
		v = cardVariants["default"]
	}
	return Cn(append([]string{cardBase, v}, extra...)...)
}

const fieldBase = "w-full px-4 py-3 border-2 border-gray-300 rounded-lg focus:border-primary focus:outline-none transition-colors duration-200 bg-white text-gray-900 placeholder-gray-500"

func InputClass(hasError bool, extra ...string) string {
	classes := []string{fieldBase}
	if hasError {
		classes = append(classes, "border-error focus:border-error")
	}
	return Cn(append(classes, extra...)...)
}

func TextAreaClass(hasError bool, extra ...string) string {
	return InputClass(hasError, append([]string{"resize-y"}, extra...)...)
}
