package generator

// Static parts of llms.txt. They describe library-wide conventions and are
// not derived from scanned sources.

const indexHeader = "# Flowery.Uno Component Library\n" +
	"\n" +
	"Flowery.Uno is an Uno Platform / WinUI component library inspired by DaisyUI.\n" +
	"It provides styled controls for building modern cross-platform applications.\n" +
	"\n" +
	"## Documentation Structure\n" +
	"\n" +
	"- `docs/llms.txt` - This file (overview and quick reference)\n" +
	"- `docs/controls/*.md` - Per-control documentation with properties, enums, and examples\n" +
	"\n" +
	"## Quick Start\n" +
	"\n" +
	"Add the namespace to your XAML:\n" +
	"```xml\n" +
	"xmlns:daisy=\"using:Flowery.Controls\"\n" +
	"```\n" +
	"\n" +
	"## Controls Overview\n" +
	"\n" +
	"| Control | Description | Key Properties |\n" +
	"|---------|-------------|----------------|\n"

const indexFooter = "## Common Patterns\n" +
	"\n" +
	"### Variants\n" +
	"Most controls support a `Variant` property:\n" +
	"- `Primary`, `Secondary`, `Accent` - Brand colors\n" +
	"- `Info`, `Success`, `Warning`, `Error` - Status colors\n" +
	"- `Neutral`, `Ghost`, `Link` - Subtle styles (on some controls)\n" +
	"\n" +
	"```xml\n" +
	"<controls:DaisyButton Variant=\"Primary\" Content=\"Primary\"/>\n" +
	"<controls:DaisyAlert Variant=\"Success\">Operation completed!</controls:DaisyAlert>\n" +
	"```\n" +
	"\n" +
	"### Sizes\n" +
	"Controls support a `Size` property with values:\n" +
	"`ExtraSmall`, `Small`, `Medium` (default), `Large`, `ExtraLarge`\n" +
	"\n" +
	"```xml\n" +
	"<controls:DaisyButton Size=\"Large\" Content=\"Large Button\"/>\n" +
	"<controls:DaisyInput Size=\"Small\" Watermark=\"Small input\"/>\n" +
	"```\n" +
	"\n" +
	"### Theming\n" +
	"Use `DaisyThemeManager` to switch themes programmatically:\n" +
	"```csharp\n" +
	"DaisyThemeManager.Instance.CurrentTheme = \"dracula\";\n" +
	"```\n" +
	"\n" +
	"Or use theme controls:\n" +
	"```xml\n" +
	"<controls:DaisyThemeDropdown/>\n" +
	"<controls:DaisyThemeSwap LightTheme=\"light\" DarkTheme=\"dark\"/>\n" +
	"```\n" +
	"\n" +
	"Available themes: light, dark, cupcake, bumblebee, emerald, corporate,\n" +
	"synthwave, retro, cyberpunk, valentine, halloween, garden, forest,\n" +
	"aqua, lofi, pastel, fantasy, wireframe, black, luxury, dracula, cmyk,\n" +
	"autumn, business, acid, lemonade, night, coffee, winter, dim, nord, sunset\n"
