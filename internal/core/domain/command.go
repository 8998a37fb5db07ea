package domain

// Host bridge command identifiers.
const (
	CmdGetIconPath        = "get_icon_path"
	CmdListAvailableIcons = "list_available_icons"
	CmdGetBadgeIconPath   = "get_badge_icon_path"
	CmdSetBadge           = "set_badge"
)

// Host bridge argument names.
const (
	ArgIconName = "iconName"
	ArgCount    = "count"
)

// Bridge variants.
const (
	VariantV2 = "v2"
	VariantV1 = "v1"
)
