// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docs/v1/extraction.proto

package docsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExtractionService_IngestDocument_FullMethodName       = "/docs.v1.ExtractionService/IngestDocument"
	ExtractionService_IngestDirectory_FullMethodName      = "/docs.v1.ExtractionService/IngestDirectory"
	ExtractionService_ProcessDocument_FullMethodName      = "/docs.v1.ExtractionService/ProcessDocument"
	ExtractionService_GetDocumentFields_FullMethodName    = "/docs.v1.ExtractionService/GetDocumentFields"
	ExtractionService_ExportDocumentFields_FullMethodName = "/docs.v1.ExtractionService/ExportDocumentFields"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService ingests document files and extracts structured fields.
type ExtractionServiceClient interface {
	// IngestDocument registers one file (deduplicated by content hash) and,
	// unless process=false, runs the extraction pipeline on it.
	IngestDocument(ctx context.Context, in *IngestDocumentRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	// IngestDirectory walks a directory and ingests every supported file.
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
	// ProcessDocument re-runs the extraction pipeline for a known document.
	ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error)
	// GetDocumentFields returns the stored field rows for a document.
	GetDocumentFields(ctx context.Context, in *GetDocumentFieldsRequest, opts ...grpc.CallOption) (*GetDocumentFieldsResponse, error)
	// ExportDocumentFields returns the document's fields as an XLSX workbook.
	ExportDocumentFields(ctx context.Context, in *ExportDocumentFieldsRequest, opts ...grpc.CallOption) (*ExportDocumentFieldsResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) IngestDocument(ctx context.Context, in *IngestDocumentRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, ExtractionService_IngestDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, ExtractionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ProcessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetDocumentFields(ctx context.Context, in *GetDocumentFieldsRequest, opts ...grpc.CallOption) (*GetDocumentFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentFieldsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetDocumentFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExportDocumentFields(ctx context.Context, in *ExportDocumentFieldsRequest, opts ...grpc.CallOption) (*ExportDocumentFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDocumentFieldsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExportDocumentFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService ingests document files and extracts structured fields.
type ExtractionServiceServer interface {
	// IngestDocument registers one file (deduplicated by content hash) and,
	// unless process=false, runs the extraction pipeline on it.
	IngestDocument(context.Context, *IngestDocumentRequest) (*IngestResponse, error)
	// IngestDirectory walks a directory and ingests every supported file.
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	// ProcessDocument re-runs the extraction pipeline for a known document.
	ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error)
	// GetDocumentFields returns the stored field rows for a document.
	GetDocumentFields(context.Context, *GetDocumentFieldsRequest) (*GetDocumentFieldsResponse, error)
	// ExportDocumentFields returns the document's fields as an XLSX workbook.
	ExportDocumentFields(context.Context, *ExportDocumentFieldsRequest) (*ExportDocumentFieldsResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) IngestDocument(context.Context, *IngestDocumentRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDocument not implemented")
}
func (UnimplementedExtractionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedExtractionServiceServer) ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDocument not implemented")
}
func (UnimplementedExtractionServiceServer) GetDocumentFields(context.Context, *GetDocumentFieldsRequest) (*GetDocumentFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentFields not implemented")
}
func (UnimplementedExtractionServiceServer) ExportDocumentFields(context.Context, *ExportDocumentFieldsRequest) (*ExportDocumentFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDocumentFields not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_IngestDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).IngestDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_IngestDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).IngestDocument(ctx, req.(*IngestDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ProcessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ProcessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ProcessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ProcessDocument(ctx, req.(*ProcessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetDocumentFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetDocumentFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetDocumentFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetDocumentFields(ctx, req.(*GetDocumentFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExportDocumentFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDocumentFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExportDocumentFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExportDocumentFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExportDocumentFields(ctx, req.(*ExportDocumentFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docs.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestDocument",
			Handler:    _ExtractionService_IngestDocument_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _ExtractionService_IngestDirectory_Handler,
		},
		{
			MethodName: "ProcessDocument",
			Handler:    _ExtractionService_ProcessDocument_Handler,
		},
		{
			MethodName: "GetDocumentFields",
			Handler:    _ExtractionService_GetDocumentFields_Handler,
		},
		{
			MethodName: "ExportDocumentFields",
			Handler:    _ExtractionService_ExportDocumentFields_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docs/v1/extraction.proto",
}
