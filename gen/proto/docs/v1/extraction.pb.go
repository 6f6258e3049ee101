// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docs/v1/extraction.proto

package docsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IngestDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Path  string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// process=false registers the file without running extraction.
	SkipProcessing bool `protobuf:"varint,2,opt,name=skip_processing,json=skipProcessing,proto3" json:"skip_processing,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDocumentRequest) Reset() {
	*x = IngestDocumentRequest{}
	mi := &file_docs_v1_extraction_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentRequest) ProtoMessage() {}

func (x *IngestDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentRequest.ProtoReflect.Descriptor instead.
func (*IngestDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{0}
}

func (x *IngestDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestDocumentRequest) GetSkipProcessing() bool {
	if x != nil {
		return x.SkipProcessing
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_docs_v1_extraction_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	RootPath       string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden     bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	SkipProcessing bool                   `protobuf:"varint,3,opt,name=skip_processing,json=skipProcessing,proto3" json:"skip_processing,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_docs_v1_extraction_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

func (x *IngestDirectoryRequest) GetSkipProcessing() bool {
	if x != nil {
		return x.SkipProcessing
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_docs_v1_extraction_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_docs_v1_extraction_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_docs_v1_extraction_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type GetDocumentFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentFieldsRequest) Reset() {
	*x = GetDocumentFieldsRequest{}
	mi := &file_docs_v1_extraction_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentFieldsRequest) ProtoMessage() {}

func (x *GetDocumentFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentFieldsRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentFieldsRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentFieldsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DocumentFieldRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	ExtractedAt   string                 `protobuf:"bytes,4,opt,name=extracted_at,json=extractedAt,proto3" json:"extracted_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentFieldRow) Reset() {
	*x = DocumentFieldRow{}
	mi := &file_docs_v1_extraction_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentFieldRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentFieldRow) ProtoMessage() {}

func (x *DocumentFieldRow) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentFieldRow.ProtoReflect.Descriptor instead.
func (*DocumentFieldRow) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{7}
}

func (x *DocumentFieldRow) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DocumentFieldRow) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *DocumentFieldRow) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *DocumentFieldRow) GetExtractedAt() string {
	if x != nil {
		return x.ExtractedAt
	}
	return ""
}

type GetDocumentFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*DocumentFieldRow    `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,3,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentFieldsResponse) Reset() {
	*x = GetDocumentFieldsResponse{}
	mi := &file_docs_v1_extraction_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentFieldsResponse) ProtoMessage() {}

func (x *GetDocumentFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentFieldsResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentFieldsResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{8}
}

func (x *GetDocumentFieldsResponse) GetFields() []*DocumentFieldRow {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *GetDocumentFieldsResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *GetDocumentFieldsResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type ExportDocumentFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentFieldsRequest) Reset() {
	*x = ExportDocumentFieldsRequest{}
	mi := &file_docs_v1_extraction_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentFieldsRequest) ProtoMessage() {}

func (x *ExportDocumentFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentFieldsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentFieldsRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{9}
}

func (x *ExportDocumentFieldsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportDocumentFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentFieldsResponse) Reset() {
	*x = ExportDocumentFieldsResponse{}
	mi := &file_docs_v1_extraction_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentFieldsResponse) ProtoMessage() {}

func (x *ExportDocumentFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_extraction_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentFieldsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentFieldsResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_extraction_proto_rawDescGZIP(), []int{10}
}

func (x *ExportDocumentFieldsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentFieldsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_docs_v1_extraction_proto protoreflect.FileDescriptor

const file_docs_v1_extraction_proto_rawDesc = "" +
	"\n" +
	"\x18docs/v1/extraction.proto\x12\adocs.v1\"T\n" +
	"\x15IngestDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12'\n" +
	"\x0fskip_processing\x18\x02 \x01(\bR\x0eskipProcessing\"\xf2\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"\x7f\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\x12'\n" +
	"\x0fskip_processing\x18\x03 \x01(\bR\x0eskipProcessing\"\xda\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x121\n" +
	"\aresults\x18\x06 \x03(\v2\x17.docs.v1.IngestResponseR\aresults\"9\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"^\n" +
	"\x17ProcessDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\";\n" +
	"\x18GetDocumentFieldsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"w\n" +
	"\x10DocumentFieldRow\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12!\n" +
	"\fextracted_at\x18\x04 \x01(\tR\vextractedAt\"\x91\x01\n" +
	"\x19GetDocumentFieldsResponse\x121\n" +
	"\x06fields\x18\x01 \x03(\v2\x19.docs.v1.DocumentFieldRowR\x06fields\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\x03 \x01(\bR\vneedsReview\">\n" +
	"\x1bExportDocumentFieldsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"N\n" +
	"\x1cExportDocumentFieldsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xcb\x03\n" +
	"\x11ExtractionService\x12I\n" +
	"\x0eIngestDocument\x12\x1e.docs.v1.IngestDocumentRequest\x1a\x17.docs.v1.IngestResponse\x12T\n" +
	"\x0fIngestDirectory\x12\x1f.docs.v1.IngestDirectoryRequest\x1a .docs.v1.IngestDirectoryResponse\x12T\n" +
	"\x0fProcessDocument\x12\x1f.docs.v1.ProcessDocumentRequest\x1a .docs.v1.ProcessDocumentResponse\x12Z\n" +
	"\x11GetDocumentFields\x12!.docs.v1.GetDocumentFieldsRequest\x1a\".docs.v1.GetDocumentFieldsResponse\x12c\n" +
	"\x14ExportDocumentFields\x12$.docs.v1.ExportDocumentFieldsRequest\x1a%.docs.v1.ExportDocumentFieldsResponseB?Z=github.com/docuvault/field-extractor/gen/proto/docs/v1;docsv1b\x06proto3"

var (
	file_docs_v1_extraction_proto_rawDescOnce sync.Once
	file_docs_v1_extraction_proto_rawDescData []byte
)

func file_docs_v1_extraction_proto_rawDescGZIP() []byte {
	file_docs_v1_extraction_proto_rawDescOnce.Do(func() {
		file_docs_v1_extraction_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docs_v1_extraction_proto_rawDesc), len(file_docs_v1_extraction_proto_rawDesc)))
	})
	return file_docs_v1_extraction_proto_rawDescData
}

var file_docs_v1_extraction_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_docs_v1_extraction_proto_goTypes = []any{
	(*IngestDocumentRequest)(nil),        // 0: docs.v1.IngestDocumentRequest
	(*IngestResponse)(nil),               // 1: docs.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),       // 2: docs.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),      // 3: docs.v1.IngestDirectoryResponse
	(*ProcessDocumentRequest)(nil),       // 4: docs.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),      // 5: docs.v1.ProcessDocumentResponse
	(*GetDocumentFieldsRequest)(nil),     // 6: docs.v1.GetDocumentFieldsRequest
	(*DocumentFieldRow)(nil),             // 7: docs.v1.DocumentFieldRow
	(*GetDocumentFieldsResponse)(nil),    // 8: docs.v1.GetDocumentFieldsResponse
	(*ExportDocumentFieldsRequest)(nil),  // 9: docs.v1.ExportDocumentFieldsRequest
	(*ExportDocumentFieldsResponse)(nil), // 10: docs.v1.ExportDocumentFieldsResponse
}
var file_docs_v1_extraction_proto_depIdxs = []int32{
	1,  // 0: docs.v1.IngestDirectoryResponse.results:type_name -> docs.v1.IngestResponse
	7,  // 1: docs.v1.GetDocumentFieldsResponse.fields:type_name -> docs.v1.DocumentFieldRow
	0,  // 2: docs.v1.ExtractionService.IngestDocument:input_type -> docs.v1.IngestDocumentRequest
	2,  // 3: docs.v1.ExtractionService.IngestDirectory:input_type -> docs.v1.IngestDirectoryRequest
	4,  // 4: docs.v1.ExtractionService.ProcessDocument:input_type -> docs.v1.ProcessDocumentRequest
	6,  // 5: docs.v1.ExtractionService.GetDocumentFields:input_type -> docs.v1.GetDocumentFieldsRequest
	9,  // 6: docs.v1.ExtractionService.ExportDocumentFields:input_type -> docs.v1.ExportDocumentFieldsRequest
	1,  // 7: docs.v1.ExtractionService.IngestDocument:output_type -> docs.v1.IngestResponse
	3,  // 8: docs.v1.ExtractionService.IngestDirectory:output_type -> docs.v1.IngestDirectoryResponse
	5,  // 9: docs.v1.ExtractionService.ProcessDocument:output_type -> docs.v1.ProcessDocumentResponse
	8,  // 10: docs.v1.ExtractionService.GetDocumentFields:output_type -> docs.v1.GetDocumentFieldsResponse
	10, // 11: docs.v1.ExtractionService.ExportDocumentFields:output_type -> docs.v1.ExportDocumentFieldsResponse
	7,  // [7:12] is the sub-list for method output_type
	2,  // [2:7] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_docs_v1_extraction_proto_init() }
func file_docs_v1_extraction_proto_init() {
	if File_docs_v1_extraction_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docs_v1_extraction_proto_rawDesc), len(file_docs_v1_extraction_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docs_v1_extraction_proto_goTypes,
		DependencyIndexes: file_docs_v1_extraction_proto_depIdxs,
		MessageInfos:      file_docs_v1_extraction_proto_msgTypes,
	}.Build()
	File_docs_v1_extraction_proto = out.File
	file_docs_v1_extraction_proto_goTypes = nil
	file_docs_v1_extraction_proto_depIdxs = nil
}
