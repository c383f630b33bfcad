package style

// metallicStyle is the premium look: gold and silver gradients on charcoal
// with a gilded frame.
func metallicStyle() Style {
	return Style{
		ID:          "metallic",
		Name:        "金属质感",
		Platform:    "Premium",
		Description: "金属光泽 + 高级质感 + 精致反光",
		Palette: Palette{
			Primary:    "#C9B037",
			Secondary:  "#D4AF37",
			Background: "#1C1C1C",
			Accent:     "#E8E8E8",
		},
		frame: `<svg viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <!-- 深色背景渐变 -->
    <linearGradient id="bg-metal" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="#2D2D2D"/>
      <stop offset="50%" stop-color="#1C1C1C"/>
      <stop offset="100%" stop-color="#2D2D2D"/>
    </linearGradient>

    <!-- 金属渐变 -->
    <linearGradient id="gold-gradient" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="#F5E7A3"/>
      <stop offset="25%" stop-color="#C9B037"/>
      <stop offset="50%" stop-color="#F5E7A3"/>
      <stop offset="75%" stop-color="#D4AF37"/>
      <stop offset="100%" stop-color="#8B7500"/>
    </linearGradient>

    <!-- 银色渐变 -->
    <linearGradient id="silver-gradient" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="#FFFFFF"/>
      <stop offset="25%" stop-color="#E8E8E8"/>
      <stop offset="50%" stop-color="#FFFFFF"/>
      <stop offset="75%" stop-color="#B8B8B8"/>
      <stop offset="100%" stop-color="#808080"/>
    </linearGradient>

    <!-- 金属光泽滤镜 -->
    <filter id="metallic-shine" x="-20%" y="-20%" width="140%" height="140%">
      <feSpecularLighting surfaceScale="2" specularConstant="1" specularExponent="20" lighting-color="#fff" result="specular">
        <fePointLight x="60" y="20" z="100"/>
      </feSpecularLighting>
      <feComposite in="SourceGraphic" in2="specular" operator="arithmetic" k1="0" k2="1" k3="1" k4="0"/>
    </filter>

    <!-- 外发光 -->
    <filter id="gold-glow" x="-50%" y="-50%" width="200%" height="200%">
      <feDropShadow dx="0" dy="0" stdDeviation="6" flood-color="#C9B037" flood-opacity="0.5"/>
    </filter>

    <!-- 内阴影 -->
    <filter id="inner-shadow-metal" x="-10%" y="-10%" width="120%" height="120%">
      <feOffset dx="0" dy="2"/>
      <feGaussianBlur stdDeviation="2" result="shadow"/>
      <feFlood flood-color="#000" flood-opacity="0.3"/>
      <feComposite in2="shadow" operator="in"/>
      <feComposite in="SourceGraphic"/>
    </filter>
  </defs>

  <!-- 背景 -->
  <rect x="10" y="10" width="100" height="100" rx="20" fill="url(#bg-metal)"/>

  <!-- 金属边框 -->
  <rect x="14" y="14" width="92" height="92" rx="16" fill="none" stroke="url(#gold-gradient)" stroke-width="2"/>

  <!-- 角落装饰 -->
  <circle cx="20" cy="20" r="3" fill="url(#gold-gradient)"/>
  <circle cx="100" cy="20" r="3" fill="url(#gold-gradient)"/>
  <circle cx="20" cy="100" r="3" fill="url(#gold-gradient)"/>
  <circle cx="100" cy="100" r="3" fill="url(#gold-gradient)"/>

  <!-- 主体容器 -->
  <g transform="translate(60, 60)">
    <g transform="translate(-60, -60)" filter="url(#gold-glow)">{content}</g>
  </g>
</svg>`,
		prompt: `你是金属质感风格设计师。为 "{subject}" 绘制一个高级奢华的图形。

## 设计风格要求

### 色彩运用
- 主体使用 url(#gold-gradient) 金色渐变
- 或使用 url(#silver-gradient) 银色渐变
- 保持高级奢华的感觉
- 图形要在深色背景上闪耀

### 形态特征
- 精致、优雅的设计
- 线条流畅，有金属质感
- 简洁但不简单
- 保持图形的高端感

### 构图要求
- 【重要】主体必须居中在坐标 (60, 60) 附近
- 主体占图标 55-65% 面积
- 图形要有奢华高级的感觉

## 技术规则
1. 只输出 SVG 图形元素 (path, circle, rect, polygon)
2. 图形中心点在 (60, 60)，有效范围 35-85
3. 使用 url(#gold-gradient) 或 url(#silver-gradient) 填充
4. 直接输出代码，无需解释

## 参考示例 - 皇冠:
<path d="M35 70 L40 50 L50 60 L60 45 L70 60 L80 50 L85 70 Z" fill="url(#gold-gradient)"/>
<rect x="35" y="70" width="50" height="8" rx="2" fill="url(#gold-gradient)"/>
<circle cx="60" cy="50" r="4" fill="url(#silver-gradient)"/>`,
	}
}
