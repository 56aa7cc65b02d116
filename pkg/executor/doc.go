// Package executor materializes window plans through a WindowingCapability.
//
// Windows are processed strictly one after another. For each window the
// executor creates the window on its first page (the generated title page
// when the plan starts with a TitleTab, otherwise the plan's anchor URL),
// then opens the remaining links as background tabs and assembles groups.
// The anchor URL is opened only once: the first link matching it reuses the
// window's initial tab instead of creating a new one.
//
// The first failing host call aborts the run. Nothing is rolled back.
package executor
