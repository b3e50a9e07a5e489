// Package listlens extracts structured listing data (titles, prices,
// descriptions, metadata) from marketplace, retail, and freelance-job sites
// by driving a headless browser, and offers light downstream processing:
// cross-source price comparison, CSV export, visual regression testing via
// screenshots, and a small web dashboard.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, sqlite/, imaging/).
package listlens
