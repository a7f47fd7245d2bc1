package port

// DocumentRoot is the element that receives the theme marker.
// The class tokens and the color-scheme style property are the only contract
// between the theme subsystem and the style cascade.
type DocumentRoot interface {
	AddClass(name string)
	RemoveClass(name string)
	SetStyleProperty(name, value string)
}
