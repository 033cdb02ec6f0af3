package console

// Settings is the typed view of the console configuration served by
// /configuration.pinpoint.  Fields are zero until the fetch completes.
type Settings struct {
	SendUsage        bool   `mapstructure:"sendUsage"`
	EditUserInfo     bool   `mapstructure:"editUserInfo"`
	ShowActiveThread bool   `mapstructure:"showActiveThread"`
	OpenSource       bool   `mapstructure:"openSource"`
	UserID           string `mapstructure:"userId"`
	UserName         string `mapstructure:"userName"`
	UserDepartment   string `mapstructure:"userDepartment"`
	SecurityGuideURL string `mapstructure:"securityGuideUrl"`
}

// Settings decodes the current store contents.
func (s *Store) Settings() (Settings, error) {
	var ret Settings
	err := s.Decode(&ret)
	return ret, err
}
