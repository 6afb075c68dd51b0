// 指示: miu200521358
// Package anatomy は解剖モデルGLBアセットの読み込みアダプタを提供する。
package anatomy

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/miu200521358/mu_anatomy_viewer/pkg/adapter/io_common"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/domain/model"
	"github.com/miu200521358/mu_anatomy_viewer/pkg/shared/base/logging"
)

const (
	glbHeaderLength   = 12
	glbChunkHeadSize  = 8
	glbMagic          = 0x46546C67
	glbJSONChunkType  = 0x4E4F534A
	glbBinChunkType   = 0x004E4942
	glbMinValidLength = glbHeaderLength + glbChunkHeadSize
)

const (
	gltfComponentTypeByte          = 5120
	gltfComponentTypeUnsignedByte  = 5121
	gltfComponentTypeShort         = 5122
	gltfComponentTypeUnsignedShort = 5123
	gltfComponentTypeUnsignedInt   = 5125
	gltfComponentTypeFloat         = 5126
)

// LoadProgressEventType はモデル読込進捗イベント種別を表す。
type LoadProgressEventType string

const (
	// LoadProgressEventTypeFileReadComplete はファイル読込完了イベントを表す。
	LoadProgressEventTypeFileReadComplete LoadProgressEventType = "file_read_complete"
	// LoadProgressEventTypeJsonParsed はJSON解析完了イベントを表す。
	LoadProgressEventTypeJsonParsed LoadProgressEventType = "json_parsed"
	// LoadProgressEventTypePrimitiveProcessed はプリミティブ変換進行イベントを表す。
	LoadProgressEventTypePrimitiveProcessed LoadProgressEventType = "primitive_processed"
	// LoadProgressEventTypeCompleted はモデル読込完了イベントを表す。
	LoadProgressEventTypeCompleted LoadProgressEventType = "completed"
)

// LoadProgressEvent はモデル読込進捗イベントを表す。
type LoadProgressEvent struct {
	Type           LoadProgressEventType
	FileSizeBytes  int
	PrimitiveTotal int
	PrimitiveDone  int
}

// AnatomyModelRepository は解剖モデルGLBの読み込み契約を表す。
type AnatomyModelRepository struct {
	loadProgressReporter func(LoadProgressEvent)
}

// NewAnatomyModelRepository はAnatomyModelRepositoryを生成する。
func NewAnatomyModelRepository() *AnatomyModelRepository {
	return &AnatomyModelRepository{}
}

// SetLoadProgressReporter は読込進捗受信コールバックを設定する。
func (r *AnatomyModelRepository) SetLoadProgressReporter(reporter func(LoadProgressEvent)) {
	if r == nil {
		return
	}
	r.loadProgressReporter = reporter
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *AnatomyModelRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".glb")
}

// InferName はパスから表示名を推定する。
func (r *AnatomyModelRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はGLBを読み込み、名前付きプリミティブ列へ変換する。
func (r *AnatomyModelRepository) Load(path string) ([]*model.MeshEntity, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	loadTargetName := filepath.Base(path)
	logModelInfo("モデル読込開始: file=%s", loadTargetName)

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("モデルファイルの読み取りに失敗しました", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeFileReadComplete,
		FileSizeBytes: len(b),
	})

	jsonChunk, binChunk, err := parseGLBChunks(b)
	if err != nil {
		return nil, io_common.NewIoParseFailed("GLBチャンクの解析に失敗しました", err)
	}

	doc := gltfDocument{}
	if err := json.Unmarshal(jsonChunk, &doc); err != nil {
		return nil, io_common.NewIoParseFailed("glTF JSONチャンクの解析に失敗しました", err)
	}
	primitiveTotal := countGltfPrimitives(doc.Meshes)
	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeJsonParsed,
		FileSizeBytes:  len(b),
		PrimitiveTotal: primitiveTotal,
	})
	logModelInfo(
		"モデル読込ステップ: JSON解析完了 meshes=%d primitives=%d accessors=%d",
		len(doc.Meshes), primitiveTotal, len(doc.Accessors),
	)

	meshNameOverrides := buildMeshNameOverrides(doc.Nodes)

	entities := make([]*model.MeshEntity, 0, primitiveTotal)
	done := 0
	for meshIndex, mesh := range doc.Meshes {
		rawName := mesh.Name
		if override, ok := meshNameOverrides[meshIndex]; ok && override != "" {
			rawName = override
		}
		for _, primitive := range mesh.Primitives {
			entity, err := buildMeshEntity(&doc, binChunk, rawName, primitive)
			if err != nil {
				return nil, err
			}
			entities = append(entities, entity)
			done++
			r.reportLoadProgress(LoadProgressEvent{
				Type:           LoadProgressEventTypePrimitiveProcessed,
				PrimitiveTotal: primitiveTotal,
				PrimitiveDone:  done,
			})
		}
	}

	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeCompleted,
		FileSizeBytes:  len(b),
		PrimitiveTotal: primitiveTotal,
		PrimitiveDone:  done,
	})
	logModelInfo("モデル読込完了: file=%s primitives=%d", loadTargetName, len(entities))
	return entities, nil
}

// reportLoadProgress は読込進捗イベントを通知する。
func (r *AnatomyModelRepository) reportLoadProgress(event LoadProgressEvent) {
	if r == nil || r.loadProgressReporter == nil {
		return
	}
	r.loadProgressReporter(event)
}

// buildMeshNameOverrides はメッシュを参照するノード名を優先名として収集する。
func buildMeshNameOverrides(nodes []gltfNode) map[int]string {
	overrides := map[int]string{}
	for _, node := range nodes {
		if node.Mesh == nil || node.Name == "" {
			continue
		}
		if _, exists := overrides[*node.Mesh]; exists {
			continue
		}
		overrides[*node.Mesh] = node.Name
	}
	return overrides
}

// buildMeshEntity はglTF primitive 1件をMeshEntityへ変換する。
func buildMeshEntity(doc *gltfDocument, bin []byte, rawName string, primitive gltfPrimitive) (*model.MeshEntity, error) {
	positionAccessor, ok := primitive.Attributes["POSITION"]
	if !ok {
		return nil, io_common.NewIoParseFailed("primitiveにPOSITION属性がありません: %s", nil, rawName)
	}
	vertices, err := readVec3Accessor(doc, bin, positionAccessor)
	if err != nil {
		return nil, err
	}

	var indices []int
	if primitive.Indices != nil {
		indices, err = readIndexAccessor(doc, bin, *primitive.Indices)
		if err != nil {
			return nil, err
		}
		for _, index := range indices {
			if index < 0 || index >= len(vertices) {
				return nil, io_common.NewIoParseFailed("indicesが頂点範囲を超えています: %d >= %d", nil, index, len(vertices))
			}
		}
	}

	appearance := defaultAppearance()
	if primitive.Material != nil && *primitive.Material >= 0 && *primitive.Material < len(doc.Materials) {
		appearance = materialAppearance(doc.Materials[*primitive.Material])
	}

	return &model.MeshEntity{
		RawName:    rawName,
		Appearance: appearance,
		Vertices:   vertices,
		Indices:    indices,
	}, nil
}

// defaultAppearance は材質未指定時の外観を返す。
func defaultAppearance() model.Appearance {
	return model.Appearance{
		Color:      mgl64.Vec4{1, 1, 1, 1},
		Opacity:    1,
		DepthWrite: true,
		DepthTest:  true,
	}
}

// materialAppearance はglTF材質から初期外観を構築する。
func materialAppearance(material gltfMaterial) model.Appearance {
	appearance := defaultAppearance()
	if factor := material.PbrMetallicRoughness.BaseColorFactor; len(factor) == 4 {
		appearance.Color = mgl64.Vec4{factor[0], factor[1], factor[2], factor[3]}
		appearance.Opacity = factor[3]
	}
	if emissive := material.EmissiveFactor; len(emissive) == 3 {
		appearance.Emissive = mgl64.Vec3{emissive[0], emissive[1], emissive[2]}
	}
	if strings.EqualFold(material.AlphaMode, "BLEND") {
		appearance.Transparent = true
		appearance.DepthWrite = false
	}
	return appearance
}

// parseGLBChunks はGLBバイナリをJSONチャンクとBINチャンクへ分割する。
func parseGLBChunks(b []byte) (jsonChunk []byte, binChunk []byte, err error) {
	if len(b) < glbMinValidLength {
		return nil, nil, io_common.NewIoParseFailed("GLBデータが短すぎます: %d bytes", nil, len(b))
	}
	if binary.LittleEndian.Uint32(b[0:4]) != glbMagic {
		return nil, nil, io_common.NewIoParseFailed("GLBマジックナンバーが不正です", nil)
	}
	declaredLength := int(binary.LittleEndian.Uint32(b[8:12]))
	if declaredLength > len(b) {
		return nil, nil, io_common.NewIoParseFailed("GLB長ヘッダが実サイズを超えています: %d > %d", nil, declaredLength, len(b))
	}

	offset := glbHeaderLength
	for offset+glbChunkHeadSize <= declaredLength {
		chunkLength := int(binary.LittleEndian.Uint32(b[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(b[offset+4 : offset+8])
		chunkStart := offset + glbChunkHeadSize
		chunkEnd := chunkStart + chunkLength
		if chunkEnd > declaredLength {
			return nil, nil, io_common.NewIoParseFailed("GLBチャンク長が不正です: %d", nil, chunkLength)
		}
		switch chunkType {
		case glbJSONChunkType:
			jsonChunk = b[chunkStart:chunkEnd]
		case glbBinChunkType:
			binChunk = b[chunkStart:chunkEnd]
		}
		offset = chunkEnd
	}
	if jsonChunk == nil {
		return nil, nil, io_common.NewIoParseFailed("GLB JSONチャンクが見つかりません", nil)
	}
	return jsonChunk, binChunk, nil
}

// accessorReadPlan はaccessorの読み取り計画を表す。
type accessorReadPlan struct {
	accessor      gltfAccessor
	componentSize int
	componentNum  int
	stride        int
	baseOffset    int
	viewEnd       int
}

// buildAccessorReadPlan はaccessor indexから読み取り計画を構築する。
func buildAccessorReadPlan(doc *gltfDocument, binLength int, accessorIndex int) (accessorReadPlan, error) {
	if accessorIndex < 0 || accessorIndex >= len(doc.Accessors) {
		return accessorReadPlan{}, io_common.NewIoParseFailed("accessor indexが不正です: %d", nil, accessorIndex)
	}
	accessor := doc.Accessors[accessorIndex]
	if accessor.BufferView == nil {
		return accessorReadPlan{}, io_common.NewIoParseFailed("accessor.bufferViewが未指定です: %d", nil, accessorIndex)
	}
	viewIndex := *accessor.BufferView
	if viewIndex < 0 || viewIndex >= len(doc.BufferViews) {
		return accessorReadPlan{}, io_common.NewIoParseFailed("bufferView indexが不正です: %d", nil, viewIndex)
	}
	view := doc.BufferViews[viewIndex]

	componentSize, err := componentByteSize(accessor.ComponentType)
	if err != nil {
		return accessorReadPlan{}, err
	}
	componentNum, err := typeComponentNum(accessor.Type)
	if err != nil {
		return accessorReadPlan{}, err
	}
	stride := view.ByteStride
	if stride == 0 {
		stride = componentSize * componentNum
	}

	plan := accessorReadPlan{
		accessor:      accessor,
		componentSize: componentSize,
		componentNum:  componentNum,
		stride:        stride,
		baseOffset:    view.ByteOffset + accessor.ByteOffset,
		viewEnd:       view.ByteOffset + view.ByteLength,
	}
	if plan.viewEnd > binLength {
		return accessorReadPlan{}, io_common.NewIoParseFailed("bufferViewがBINチャンクを超えています: %d > %d", nil, plan.viewEnd, binLength)
	}
	last := plan.baseOffset + (accessor.Count-1)*stride + componentSize*componentNum
	if accessor.Count > 0 && last > plan.viewEnd {
		return accessorReadPlan{}, io_common.NewIoParseFailed("accessor範囲がbufferViewを超えています: %d > %d", nil, last, plan.viewEnd)
	}
	return plan, nil
}

// readVec3Accessor はfloat VEC3 accessorを頂点列として読み取る。
func readVec3Accessor(doc *gltfDocument, bin []byte, accessorIndex int) ([]mgl64.Vec3, error) {
	plan, err := buildAccessorReadPlan(doc, len(bin), accessorIndex)
	if err != nil {
		return nil, err
	}
	if plan.accessor.ComponentType != gltfComponentTypeFloat || plan.componentNum != 3 {
		return nil, io_common.NewIoParseFailed(
			"POSITION accessorの型が不正です: componentType=%d type=%s",
			nil, plan.accessor.ComponentType, plan.accessor.Type,
		)
	}

	vertices := make([]mgl64.Vec3, 0, plan.accessor.Count)
	for i := 0; i < plan.accessor.Count; i++ {
		offset := plan.baseOffset + i*plan.stride
		vertices = append(vertices, mgl64.Vec3{
			float64(readFloat32(bin, offset)),
			float64(readFloat32(bin, offset+4)),
			float64(readFloat32(bin, offset+8)),
		})
	}
	return vertices, nil
}

// readIndexAccessor はSCALAR accessorを面インデックス列として読み取る。
func readIndexAccessor(doc *gltfDocument, bin []byte, accessorIndex int) ([]int, error) {
	plan, err := buildAccessorReadPlan(doc, len(bin), accessorIndex)
	if err != nil {
		return nil, err
	}
	if plan.componentNum != 1 {
		return nil, io_common.NewIoParseFailed("indices accessorの型が不正です: type=%s", nil, plan.accessor.Type)
	}

	indices := make([]int, 0, plan.accessor.Count)
	for i := 0; i < plan.accessor.Count; i++ {
		offset := plan.baseOffset + i*plan.stride
		switch plan.accessor.ComponentType {
		case gltfComponentTypeUnsignedByte:
			indices = append(indices, int(bin[offset]))
		case gltfComponentTypeUnsignedShort:
			indices = append(indices, int(binary.LittleEndian.Uint16(bin[offset:offset+2])))
		case gltfComponentTypeUnsignedInt:
			indices = append(indices, int(binary.LittleEndian.Uint32(bin[offset:offset+4])))
		default:
			return nil, io_common.NewIoParseFailed("indices componentTypeが不正です: %d", nil, plan.accessor.ComponentType)
		}
	}
	return indices, nil
}

// readFloat32 はリトルエンディアンのfloat32を読み取る。
func readFloat32(bin []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(bin[offset : offset+4]))
}

// componentByteSize はcomponentTypeのバイト幅を返す。
func componentByteSize(componentType int) (int, error) {
	switch componentType {
	case gltfComponentTypeByte, gltfComponentTypeUnsignedByte:
		return 1, nil
	case gltfComponentTypeShort, gltfComponentTypeUnsignedShort:
		return 2, nil
	case gltfComponentTypeUnsignedInt, gltfComponentTypeFloat:
		return 4, nil
	}
	return 0, io_common.NewIoParseFailed("未対応のcomponentTypeです: %d", nil, componentType)
}

// typeComponentNum はaccessor typeの要素数を返す。
func typeComponentNum(accessorType string) (int, error) {
	switch accessorType {
	case "SCALAR":
		return 1, nil
	case "VEC2":
		return 2, nil
	case "VEC3":
		return 3, nil
	case "VEC4":
		return 4, nil
	}
	return 0, io_common.NewIoParseFailed("未対応のaccessor typeです: %s", nil, accessorType)
}

// countGltfPrimitives はglTF内のprimitive総数を返す。
func countGltfPrimitives(meshes []gltfMesh) int {
	total := 0
	for _, mesh := range meshes {
		total += len(mesh.Primitives)
	}
	return total
}

// logModelInfo はモデル読込のINFOログを出力する。
func logModelInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
