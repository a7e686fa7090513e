package recordui

// Inbound operation names.
const (
	OpSetData    = "set_data"
	OpSetUUID    = "set_uuid"
	OpSetVisible = "set_visible"
	OpGetData    = "get_data"
	OpGetView    = "get_view"
	OpCursor     = "cursor"
	OpFilter     = "filter"
	OpEdit       = "edit"
	OpPress      = "press"
	OpLoad       = "load"
	OpGetState   = "get_state"
)

// Outbound event names.
const (
	EvSelectionChanged = "selection_changed"
	EvNew              = "new"
	EvSave             = "save"
	EvDelete           = "delete"
	EvStatus           = "status"
)

// Cursor directions for the list's cursor command.
const (
	CursorUp   = "up"
	CursorDown = "down"
)

// Button names; each presses into the event of the same name.
const (
	ButtonNew    = "new"
	ButtonSave   = "save"
	ButtonDelete = "delete"
)

// Form field names for the edit command and the pulled field bag.
const (
	FieldName    = "name"
	FieldSurname = "surname"
)
