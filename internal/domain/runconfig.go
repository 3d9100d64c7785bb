package domain

// Recognized product and processing-stage identifiers.
const (
	ProductTypeDSWxHLS = "DSWX_HLS"
	PGENameDSWxHLS     = "DSWX_HLS_PGE"
)

// DSWxHLSSchema returns the built-in schema for a DSWx-HLS run
// configuration. The tree is rebuilt per call so callers can never alias
// a shared mutable copy; every returned tree is identical.
func DSWxHLSSchema() SchemaNode {
	return SchemaNode{
		Name:     "runconfig",
		Kind:     KindGroup,
		Required: true,
		Children: []SchemaNode{
			{Name: "name", Kind: KindString},
			{
				Name:     "groups",
				Kind:     KindGroup,
				Required: true,
				Children: []SchemaNode{
					pgeNameGroup(),
					inputFileGroup(),
					dynamicAncillaryFileGroup(),
					primaryExecutableGroup(),
					productPathGroup(),
					processingGroup(),
				},
			},
		},
	}
}

func pgeNameGroup() SchemaNode {
	return SchemaNode{
		Name:     "pge_name_group",
		Kind:     KindGroup,
		Required: true,
		Children: []SchemaNode{
			{Name: "pge_name", Kind: KindEnum, Required: true, AllowedValues: []string{PGENameDSWxHLS}},
		},
	}
}

func inputFileGroup() SchemaNode {
	return SchemaNode{
		Name:     "input_file_group",
		Kind:     KindGroup,
		Required: true,
		Children: []SchemaNode{
			{
				Name:     "input_file_paths",
				Kind:     KindList,
				Required: true,
				MinItems: 1,
				Elem:     &SchemaNode{Name: "input_file_paths", Kind: KindString},
			},
		},
	}
}

func dynamicAncillaryFileGroup() SchemaNode {
	return SchemaNode{
		Name: "dynamic_ancillary_file_group",
		Kind: KindGroup,
		Children: []SchemaNode{
			{Name: "dem_file", Kind: KindString, Required: true},
			{Name: "landcover_file", Kind: KindString},
			{Name: "worldcover_file", Kind: KindString},
			{Name: "shoreline_shapefile", Kind: KindString},
		},
	}
}

func primaryExecutableGroup() SchemaNode {
	return SchemaNode{
		Name:     "primary_executable",
		Kind:     KindGroup,
		Required: true,
		Children: []SchemaNode{
			{Name: "product_type", Kind: KindEnum, Required: true, AllowedValues: []string{ProductTypeDSWxHLS}},
			{Name: "program_path", Kind: KindString},
			{
				Name: "program_options",
				Kind: KindList,
				Elem: &SchemaNode{Name: "program_options", Kind: KindString},
			},
		},
	}
}

func productPathGroup() SchemaNode {
	return SchemaNode{
		Name:     "product_path_group",
		Kind:     KindGroup,
		Required: true,
		Children: []SchemaNode{
			{Name: "output_dir", Kind: KindString, Required: true},
			{Name: "scratch_path", Kind: KindString, Required: true},
			{Name: "product_counter", Kind: KindNumber},
		},
	}
}

func processingGroup() SchemaNode {
	return SchemaNode{
		Name: "processing",
		Kind: KindGroup,
		Children: []SchemaNode{
			saveLayersGroup(),
			hlsThresholdsGroup(),
		},
	}
}

// saveLayersGroup holds the per-layer boolean save flags.
func saveLayersGroup() SchemaNode {
	layers := []string{
		"save_wtr", "save_bwtr", "save_conf", "save_diag",
		"save_wtr_1", "save_wtr_2", "save_browse",
	}
	children := make([]SchemaNode, 0, len(layers))
	for _, layer := range layers {
		children = append(children, SchemaNode{Name: layer, Kind: KindBoolean})
	}
	return SchemaNode{Name: "save_layers", Kind: KindGroup, Children: children}
}

// hlsThresholdsGroup holds the numeric classification thresholds.
func hlsThresholdsGroup() SchemaNode {
	thresholds := []string{
		"wigt", "awgt", "pswt_1", "pswt_2", "psht",
		"pswnt_1", "pswnt_2", "osth", "lcmask_nir",
	}
	children := make([]SchemaNode, 0, len(thresholds))
	for _, name := range thresholds {
		children = append(children, SchemaNode{Name: name, Kind: KindNumber})
	}
	return SchemaNode{Name: "hls_thresholds", Kind: KindGroup, Children: children}
}
