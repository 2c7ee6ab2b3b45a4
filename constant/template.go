// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// FetchAllFn is the global function every Lua content script must define.
const FetchAllFn = "FetchAll"

// SourceTemplate is a Go text/template for scaffolding new Lua content scripts.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias item { id: string, url: string, title: string, caption: string|nil, slug: string|nil, order: number|nil, thumbnail: string|nil, preview: string|nil, byline: string|nil, description: string|nil }


----- IMPORTS -----
local http = require("http")
local json = require("json")
--- END IMPORTS ---



----- VARIABLES -----
local client = http.client()
--- END VARIABLES ---



----- MAIN -----

--- Lists every published item of the given kind.
-- @param kind string Either "video" or "photo"
-- @return item[] Table of items, ordered or carrying an order field
function {{ .FetchAllFn }}(kind)
	return {}
end

--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
