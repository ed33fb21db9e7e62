package wgpu_context

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoFrame is returned by Present when no frame was started by Clear.
var ErrNoFrame = errors.New("no frame in progress")

// Context is a renderer.GraphicsContext backed by WebGPU. Clear acquires the swapchain texture and
// opens a render pass that clears color and depth, DrawTriangle uploads the current
// model-view-projection matrix and encodes one draw, and Present submits the pass and presents.
//
// Context must be used from the thread that created it and is not safe for concurrent use.
type Context struct {
	renderer.Transform

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	surfaceFormat        wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	pipeline      *wgpu.RenderPipeline
	bindGroup     *wgpu.BindGroup
	uniformBuffer *wgpu.Buffer
	vertexBuffer  *wgpu.Buffer
	uploaded      renderer.Triangle
	hasVertices   bool

	presentMode          wgpu.PresentMode
	sampleCount          MSAASampleCount
	forceFallbackAdapter bool
	clearColor           wgpu.Color

	width  int
	height int

	// Frame state between Clear and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ renderer.GraphicsContext = &Context{}

// New creates a WebGPU context drawing into the surface described by descriptor.
// The surface is configured for width x height and the triangle pipeline is created up front.
//
// Parameters:
//   - descriptor: platform surface descriptor (see window.Window.SurfaceDescriptor)
//   - width, height: initial framebuffer size in pixels
//   - options: functional options to configure the context
//
// Returns:
//   - *Context: the initialized context
//   - error: an error if any GPU object could not be created
func New(descriptor *wgpu.SurfaceDescriptor, width, height int, options ...ContextOption) (*Context, error) {
	if descriptor == nil {
		return nil, errors.New("surface descriptor is nil")
	}
	runtime.LockOSThread()

	c := &Context{
		Transform:   renderer.NewTransform(),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: MSAA4x,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	for _, opt := range options {
		opt(c)
	}

	c.instance = wgpu.CreateInstance(nil)
	c.surface = c.instance.CreateSurface(descriptor)

	adapter, err := c.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: c.forceFallbackAdapter,
		CompatibleSurface:    c.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	c.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	c.device = device
	c.queue = device.GetQueue()

	capabilities := c.surface.GetCapabilities(c.adapter)
	if len(capabilities.Formats) == 0 {
		return nil, errors.New("surface reports no supported formats")
	}
	c.surfaceFormat = capabilities.Formats[0]

	if err := c.configureSurface(width, height); err != nil {
		return nil, err
	}
	if err := c.createPipeline(); err != nil {
		return nil, fmt.Errorf("failed to create triangle pipeline: %w", err)
	}

	return c, nil
}

// configureSurface (re)configures the swapchain and recreates the MSAA and depth attachments.
// A zero-sized surface is recorded but not configured.
func (c *Context) configureSurface(width, height int) error {
	c.width = width
	c.height = height
	if width <= 0 || height <= 0 {
		return nil
	}

	capabilities := c.surface.GetCapabilities(c.adapter)
	c.surface.Configure(c.adapter, c.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      c.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: c.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	c.releaseAttachments()

	count := uint32(c.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The render pass draws into the MSAA texture; the swapchain view is the resolve target.
		tex, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        c.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("failed to create MSAA texture: %w", err)
		}
		view, err := tex.CreateView(nil)
		if err != nil {
			tex.Release()
			return fmt.Errorf("failed to create MSAA texture view: %w", err)
		}
		c.msaaTexture = tex
		c.msaaTextureView = view
	}

	// Depth sample count must match the color attachment.
	depth, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("failed to create depth texture: %w", err)
	}
	depthView, err := depth.CreateView(nil)
	if err != nil {
		depth.Release()
		return fmt.Errorf("failed to create depth texture view: %w", err)
	}
	c.depthTexture = depth
	c.depthTextureView = depthView

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	c.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          c.msaaTextureView, // nil when MSAA is off; set in Clear
				ResolveTarget: nil,               // set per-frame when MSAA is on
				LoadOp:        wgpu.LoadOpClear,
				StoreOp:       storeOp,
				ClearValue:    c.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            c.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
	return nil
}

// createPipeline builds the shader module, uniform bind group, vertex buffer and render pipeline.
func (c *Context) createPipeline() error {
	module, err := c.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "triangle",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: TriangleShaderSource,
		},
	})
	if err != nil {
		return err
	}
	defer module.Release()

	var uniform GPUTransformUniform
	bindGroupLayout, err := c.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Transform Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniform.Size()),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout: %w", err)
	}
	defer bindGroupLayout.Release()

	c.uniformBuffer, err = c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Transform Uniform Buffer",
		Size:  uint64(uniform.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create uniform buffer: %w", err)
	}

	c.bindGroup, err = c.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Transform Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  c.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group: %w", err)
	}

	var vertex GPUVertex
	c.vertexBuffer, err = c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Triangle Vertex Buffer",
		Size:  uint64(3 * vertex.Size()),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create vertex buffer: %w", err)
	}

	pipelineLayout, err := c.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "triangle",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	c.pipeline, err = c.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "triangle Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: vertexEntryPoint,
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(vertex.Size()),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: fragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    c.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		// The triangle is seen from both sides while orbiting, so nothing is culled.
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(c.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create render pipeline: %w", err)
	}
	return nil
}

func (c *Context) SetViewport(width, height int) {
	if err := c.configureSurface(width, height); err != nil {
		log.Printf("[WGPU] resize to %dx%d failed: %v", width, height, err)
		c.width, c.height = 0, 0
	}
}

func (c *Context) Clear() error {
	if c.frameSurface != nil {
		return errors.New("previous frame surface not yet presented")
	}
	if c.width <= 0 || c.height <= 0 || c.renderPassDescriptor == nil {
		return fmt.Errorf("surface has no drawable area (%dx%d)", c.width, c.height)
	}

	surfaceTexture, err := c.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := c.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if c.sampleCount > 1 {
		c.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		c.renderPassDescriptor.ColorAttachments[0].View = view
	}

	c.frameEncoder = encoder
	c.framePass = encoder.BeginRenderPass(c.renderPassDescriptor)
	c.frameSurface = surfaceTexture
	c.frameView = view
	return nil
}

func (c *Context) SetProjection(p camera.Projection) {
	c.Transform.SetProjection(p)
}

func (c *Context) SetView(eye, target, up mgl32.Vec3) {
	c.Transform.SetView(eye, target, up)
}

func (c *Context) Rotate(angle float32, axis mgl32.Vec3) {
	c.Transform.Rotate(angle, axis)
}

func (c *Context) DrawTriangle(t renderer.Triangle) {
	if c.framePass == nil {
		return
	}

	uniform := newTransformUniform(c.ModelViewProjection())
	c.queue.WriteBuffer(c.uniformBuffer, 0, uniform.Marshal())

	if !c.hasVertices || c.uploaded != t {
		c.queue.WriteBuffer(c.vertexBuffer, 0, marshalTriangle(t))
		c.uploaded = t
		c.hasVertices = true
	}

	c.framePass.SetPipeline(c.pipeline)
	c.framePass.SetBindGroup(0, c.bindGroup, nil)
	c.framePass.SetVertexBuffer(0, c.vertexBuffer, 0, wgpu.WholeSize)
	c.framePass.Draw(3, 1, 0, 0)
}

func (c *Context) Present() error {
	if c.frameEncoder == nil {
		return ErrNoFrame
	}
	defer c.releaseFrame()

	c.framePass.End()
	c.framePass.Release()
	c.framePass = nil

	commandBuffer, err := c.frameEncoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("failed to finish command encoder: %w", err)
	}
	c.queue.Submit(commandBuffer)
	commandBuffer.Release()

	c.surface.Present()
	return nil
}

// releaseFrame drops the per-frame encoder and swapchain references.
func (c *Context) releaseFrame() {
	if c.frameEncoder != nil {
		c.frameEncoder.Release()
		c.frameEncoder = nil
	}
	if c.frameView != nil {
		c.frameView.Release()
		c.frameView = nil
	}
	if c.frameSurface != nil {
		c.frameSurface.Release()
		c.frameSurface = nil
	}
}

// releaseAttachments drops the size-dependent MSAA and depth attachments.
func (c *Context) releaseAttachments() {
	if c.msaaTextureView != nil {
		c.msaaTextureView.Release()
		c.msaaTextureView = nil
	}
	if c.msaaTexture != nil {
		c.msaaTexture.Release()
		c.msaaTexture = nil
	}
	if c.depthTextureView != nil {
		c.depthTextureView.Release()
		c.depthTextureView = nil
	}
	if c.depthTexture != nil {
		c.depthTexture.Release()
		c.depthTexture = nil
	}
}

// Release frees every GPU object owned by the context. The context must not be used afterwards.
func (c *Context) Release() {
	c.releaseFrame()
	c.releaseAttachments()
	if c.pipeline != nil {
		c.pipeline.Release()
	}
	if c.bindGroup != nil {
		c.bindGroup.Release()
	}
	if c.vertexBuffer != nil {
		c.vertexBuffer.Release()
	}
	if c.uniformBuffer != nil {
		c.uniformBuffer.Release()
	}
	if c.queue != nil {
		c.queue.Release()
	}
	if c.device != nil {
		c.device.Release()
	}
	if c.adapter != nil {
		c.adapter.Release()
	}
	if c.surface != nil {
		c.surface.Release()
	}
	if c.instance != nil {
		c.instance.Release()
	}
}

// Size returns the configured framebuffer size.
//
// Returns:
//   - width, height: size in pixels
func (c *Context) Size() (width, height int) {
	return c.width, c.height
}
