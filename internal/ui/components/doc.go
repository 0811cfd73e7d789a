// Package components provides the theme-aware building blocks the viewer
// surfaces are drawn with.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable theme definitions (palette, borders, typography)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Small elements that render to strings
//
// Themes are passed explicitly through RenderContext, never through globals:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.NewDots(5, 2).ViewWithContext(ctx)
//
// View() uses the default theme:
//
//	out := components.NewBadge("VIDEO").WithVariant(components.BadgeVariantInfo).View()
//
// # Viewer components
//
//   - Stage: the bordered area the current item is drawn in
//   - Arrow: previous/next affordances, dimmed when navigation is impossible
//   - Dots: position indicator with a sliding window for long catalogs
//   - Badge: small labels (kind, duration, playing, stacking order)
//   - Placeholder: the fixed graphic shown when an item fails to display
//   - Text: styled text
package components
