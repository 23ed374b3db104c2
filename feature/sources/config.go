package sources

// Config holds the per base store feed settings.
type Config struct {
	NO NOConfig `mapstructure:"no"`
	SE SEConfig `mapstructure:"se"`
	BE BEConfig `mapstructure:"be"`
	DE DEConfig `mapstructure:"de"`
}

// NOConfig configures the SLQ feed of Vitusapotek pharmacies.
type NOConfig struct {
	// Enabled registers the feed for full and partial reloads.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// URL is the document with the inventory of every pharmacy.
	URL string `mapstructure:"url" default:"http://localhost/fullunrestrictedinventory.json"`
	// LocationURL is the per pharmacy endpoint; {id} is replaced by the pharmacy id.
	LocationURL string `mapstructure:"location_url" default:"https://slq.vitusapotek.net/pharmacy/{id}/unrestrictedinventory"`
}

// SEConfig configures the Lloyds Apotek feed.
type SEConfig struct {
	Enabled bool   `mapstructure:"enabled" default:"true"`
	URL     string `mapstructure:"url" default:"http://localhost/stock-levels-se"`
}

// BEConfig configures the Lloyds Pharmacia main warehouse file.
type BEConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is a local stock file. When empty the newest object under ObjectPrefix is read.
	Path string `mapstructure:"path" default:""`
	// ObjectPrefix selects the daily stock files in the storage bucket.
	ObjectPrefix string `mapstructure:"object_prefix" default:"be/stocks_quotidiens_be_ftp_"`
	// LocationID is the id the warehouse is published under.
	LocationID string `mapstructure:"location_id" default:"lbe_999010"`
	// SkipInvalid skips lines with a non-numeric SKU or quantity instead of failing the file.
	SkipInvalid bool `mapstructure:"skip_invalid" default:"false"`
}

// DEConfig configures the Recusana database feed.
type DEConfig struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Table holds one row per store and item.
	Table string `mapstructure:"table" default:"stock_levels"`
}
