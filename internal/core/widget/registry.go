package widget

// ID identifies a widget inside a Registry.
type ID int

// NoWidget is the ID of "nothing".
const NoWidget ID = -1

// Registry owns every widget of the window for its whole lifetime and keeps
// the click handlers registered by the owner.
type Registry struct {
	widgets []Widget
	clicks  map[ID]func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{clicks: make(map[ID]func())}
}

// Register adds a widget and returns its ID. IDs follow registration order.
func (registry *Registry) Register(widget Widget) ID {
	registry.widgets = append(registry.widgets, widget)
	return ID(len(registry.widgets) - 1)
}

// Get returns the widget for id, or nil when id is unknown.
func (registry *Registry) Get(id ID) Widget {
	if id < 0 || int(id) >= len(registry.widgets) {
		return nil
	}
	return registry.widgets[id]
}

// Len returns the number of registered widgets.
func (registry *Registry) Len() int {
	return len(registry.widgets)
}

// Each calls fn for every widget in registration order.
func (registry *Registry) Each(fn func(ID, Widget)) {
	for index, widget := range registry.widgets {
		fn(ID(index), widget)
	}
}

// OnClick registers the click handler for id, replacing any previous one.
// A nil handler removes it.
func (registry *Registry) OnClick(id ID, handler func()) {
	if handler == nil {
		delete(registry.clicks, id)
		return
	}
	registry.clicks[id] = handler
}

// NotifyClick runs the click handler of id, if any.
func (registry *Registry) NotifyClick(id ID) {
	if handler, ok := registry.clicks[id]; ok {
		handler()
	}
}
